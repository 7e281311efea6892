package service

import (
	"github.com/jefferson5286/taskmanage/internal/model"
	"github.com/jefferson5286/taskmanage/internal/pkg/token"
	"github.com/jefferson5286/taskmanage/internal/repository"
)

// Tasks implements the ownership-scoped task operations
type Tasks struct {
	store *repository.Store
	guard *Guard
}

func NewTasks(store *repository.Store, guard *Guard) *Tasks {
	return &Tasks{store: store, guard: guard}
}

// Create persists a new task for the token-authorized user and returns the
// task's external reference.
func (t *Tasks) Create(userReference, accessToken, title, description string, status model.Status) (string, error) {
	user, err := t.guard.RequireValidToken(accessToken, userReference)
	if err != nil {
		return "", err
	}

	reference := token.New()
	if _, err := t.store.CreateTask(user.ID, reference, title, description, status); err != nil {
		return "", err
	}

	return reference, nil
}

// List returns all tasks owned by the referenced user
func (t *Tasks) List(userReference string) ([]model.Task, error) {
	user, err := t.guard.RequireUser(userReference)
	if err != nil {
		return nil, err
	}
	return t.store.ListTasksByUser(user.ID)
}

// Update applies a single-field change to the task matching taskReference.
// It returns the task title after the update, for the confirmation text.
func (t *Tasks) Update(userReference, accessToken, taskReference, target, value string) (string, error) {
	if _, err := t.guard.RequireValidToken(accessToken, userReference); err != nil {
		return "", err
	}

	_, task, err := t.guard.RequireTaskOwned(taskReference, userReference)
	if err != nil {
		return "", err
	}

	if err := t.store.UpdateTaskField(task.ID, target, value); err != nil {
		return "", err
	}

	if target == "task" {
		return value, nil
	}
	return task.Task, nil
}

// Delete removes the task matching taskReference for its owner and returns
// the deleted task's title.
func (t *Tasks) Delete(userReference, taskReference string) (string, error) {
	_, task, err := t.guard.RequireTaskOwned(taskReference, userReference)
	if err != nil {
		return "", err
	}

	if err := t.store.DeleteTask(task.ID); err != nil {
		return "", err
	}

	return task.Task, nil
}

// Clear removes every task owned by the referenced user and returns the
// count deleted. Clearing a user with no tasks succeeds with zero.
func (t *Tasks) Clear(userReference string) (int64, error) {
	user, err := t.guard.RequireUser(userReference)
	if err != nil {
		return 0, err
	}
	return t.store.DeleteAllTasksByUser(user.ID)
}
