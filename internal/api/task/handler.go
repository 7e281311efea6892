package task

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jefferson5286/taskmanage/internal/model"
	"github.com/jefferson5286/taskmanage/internal/service"
)

const referenceMaxLength = 36

// Handler serves the task CRUD routes
type Handler struct {
	tasks *service.Tasks
}

func NewHandler(tasks *service.Tasks) *Handler {
	return &Handler{tasks: tasks}
}

// Create handles task creation for an authorized user
func (h *Handler) Create(c *gin.Context) {
	var req model.TaskCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	reference, err := h.tasks.Create(req.UserReference, req.Token, req.Task, req.Description, status)
	if err != nil {
		h.abortWithServiceError(c, err, req.UserReference, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"details":   "Task successfully saved!",
		"reference": reference,
	})
}

// List handles listing all tasks of a user. The reference is not length
// checked here; an unknown reference of any length resolves to 404.
func (h *Handler) List(c *gin.Context) {
	userReference := c.Param("user_reference")

	tasks, err := h.tasks.List(userReference)
	if err != nil {
		h.abortWithServiceError(c, err, userReference, "")
		return
	}

	views := make([]model.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, model.TaskView{
			Reference:   t.Reference,
			Task:        t.Task,
			Description: t.Description,
			Status:      string(t.Status),
		})
	}

	c.JSON(http.StatusOK, views)
}

// Update handles a single-field update of a task
func (h *Handler) Update(c *gin.Context) {
	var req model.TaskUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	if err := validateUpdateValue(req.Target, req.Value); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	name, err := h.tasks.Update(req.UserReference, req.Token, req.TaskReference, req.Target, req.Value)
	if err != nil {
		h.abortWithServiceError(c, err, req.UserReference, req.TaskReference)
		return
	}

	c.String(http.StatusOK, "Task <task=%s> has been updated.", name)
}

// Delete handles deleting a single task
func (h *Handler) Delete(c *gin.Context) {
	userReference := c.Param("user")
	taskReference := c.Param("task")
	if len(userReference) > referenceMaxLength || len(taskReference) > referenceMaxLength {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "references must have at most 36 characters"})
		return
	}

	name, err := h.tasks.Delete(userReference, taskReference)
	if err != nil {
		h.abortWithServiceError(c, err, userReference, taskReference)
		return
	}

	c.String(http.StatusOK, "Task <task=%s> was deleted.", name)
}

// Clear handles deleting every task of a user
func (h *Handler) Clear(c *gin.Context) {
	userReference := c.Param("user")
	if len(userReference) > referenceMaxLength {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "user reference must have at most 36 characters"})
		return
	}

	if _, err := h.tasks.Clear(userReference); err != nil {
		h.abortWithServiceError(c, err, userReference, "")
		return
	}

	c.String(http.StatusOK, "All tasks for <user_reference=%s> have been deleted!", userReference)
}

// validateUpdateValue checks the update target against the closed field set
// and the value against that field's constraints.
func validateUpdateValue(target, value string) error {
	switch target {
	case "task":
		if len(value) > 55 {
			return errors.New("task must have at most 55 characters")
		}
	case "description":
		if len(value) > 255 {
			return errors.New("description must have at most 255 characters")
		}
	case "status":
		if _, err := model.ParseStatus(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("target must be 'task', 'description' or 'status', got %q", target)
	}
	return nil
}

func (h *Handler) abortWithServiceError(c *gin.Context, err error, userReference, taskReference string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("User with <user_reference=%s> not found!", userReference)})
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Task with <task_reference=%s> not found!", taskReference)})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "The access token is not valid. Unauthorized access!"})
	default:
		zap.L().Error("Unhandled server error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Server Error detail: %v", err)})
	}
}
