package model

// Task represents a single task owned by a user
type Task struct {
	ID          int    `json:"-" db:"id"`
	Reference   string `json:"reference" db:"reference"`
	Task        string `json:"task" db:"task"`
	Description string `json:"description" db:"description"`
	Status      Status `json:"status" db:"status"`
	UserID      int    `json:"-" db:"user_id"`
}

// TaskCreate represents the create task request body
type TaskCreate struct {
	UserReference string `json:"user_reference" binding:"required,max=36"`
	Token         string `json:"token" binding:"required,max=36"`
	Task          string `json:"task" binding:"required,max=55"`
	Description   string `json:"description" binding:"max=255"`
	Status        string `json:"status" binding:"required"`
}

// TaskUpdate represents the update task request body. Target names the field
// to change (task, description or status); Value is its new content.
type TaskUpdate struct {
	UserReference string `json:"user_reference" binding:"required,max=36"`
	TaskReference string `json:"task_reference" binding:"required,max=36"`
	Token         string `json:"token" binding:"required,max=36"`
	Target        string `json:"target" binding:"required"`
	Value         string `json:"value"`
}

// TaskView represents one entry of the list tasks response
type TaskView struct {
	Reference   string `json:"reference"`
	Task        string `json:"task"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
