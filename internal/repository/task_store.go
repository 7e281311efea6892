package repository

import (
	"database/sql"
	"fmt"

	"github.com/jefferson5286/taskmanage/internal/model"
)

// updatableColumns whitelists the task fields a single-field update may touch
var updatableColumns = map[string]bool{
	"task":        true,
	"description": true,
	"status":      true,
}

// CreateTask creates a new task owned by userID
func (s *Store) CreateTask(userID int, reference, task, description string, status model.Status) (*model.Task, error) {
	query := `
		INSERT INTO tasks (reference, task, description, status, user_id)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.Exec(query, reference, task, description, string(status), userID)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Task{
		ID:          int(id),
		Reference:   reference,
		Task:        task,
		Description: description,
		Status:      status,
		UserID:      userID,
	}, nil
}

// ListTasksByUser returns all tasks owned by userID in insertion order
func (s *Store) ListTasksByUser(userID int) ([]model.Task, error) {
	query := `
		SELECT id, reference, task, description, status, user_id
		FROM tasks WHERE user_id = ? ORDER BY id
	`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		err := rows.Scan(
			&task.ID, &task.Reference, &task.Task,
			&task.Description, &task.Status, &task.UserID,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// GetTaskByReference returns the task with the given reference owned by
// userID, or nil when no such task belongs to that user.
func (s *Store) GetTaskByReference(reference string, userID int) (*model.Task, error) {
	query := `
		SELECT id, reference, task, description, status, user_id
		FROM tasks WHERE reference = ? AND user_id = ?
	`

	task := &model.Task{}
	err := s.db.QueryRow(query, reference, userID).Scan(
		&task.ID, &task.Reference, &task.Task,
		&task.Description, &task.Status, &task.UserID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTaskField updates a single whitelisted column of a task
func (s *Store) UpdateTaskField(taskID int, field, value string) error {
	if !updatableColumns[field] {
		return fmt.Errorf("field %q is not updatable", field)
	}

	query := fmt.Sprintf("UPDATE tasks SET %s = ? WHERE id = ?", field)
	_, err := s.db.Exec(query, value, taskID)
	return err
}

// DeleteTask deletes a task by its internal id
func (s *Store) DeleteTask(taskID int) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := s.db.Exec(query, taskID)
	return err
}

// DeleteAllTasksByUser deletes every task owned by userID and returns the
// number of rows removed. Zero rows is not an error.
func (s *Store) DeleteAllTasksByUser(userID int) (int64, error) {
	query := `DELETE FROM tasks WHERE user_id = ?`
	result, err := s.db.Exec(query, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
