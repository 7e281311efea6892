package service

import (
	"crypto/subtle"

	"github.com/jefferson5286/taskmanage/internal/model"
	"github.com/jefferson5286/taskmanage/internal/repository"
)

// Guard performs the authorization checks shared by the task operations.
// It holds no state of its own; every check reads the store. Checks always
// run before any mutating action.
type Guard struct {
	store *repository.Store
}

func NewGuard(store *repository.Store) *Guard {
	return &Guard{store: store}
}

// RequireUser resolves a user reference, failing with ErrUserNotFound when
// no user carries it.
func (g *Guard) RequireUser(reference string) (*model.User, error) {
	user, err := g.store.GetUserByReference(reference)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// RequireValidToken resolves the user and checks the supplied token against
// the currently active one. The comparison is constant-time.
func (g *Guard) RequireValidToken(accessToken, userReference string) (*model.User, error) {
	user, err := g.RequireUser(userReference)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(accessToken), []byte(user.CurrentAccessToken)) != 1 {
		return nil, ErrInvalidToken
	}

	return user, nil
}

// RequireTaskOwned resolves the user and the task with the given reference
// belonging to that user. The returned task is the one matching the checked
// reference; callers mutate that task and no other.
func (g *Guard) RequireTaskOwned(taskReference, userReference string) (*model.User, *model.Task, error) {
	user, err := g.RequireUser(userReference)
	if err != nil {
		return nil, nil, err
	}

	task, err := g.store.GetTaskByReference(taskReference, user.ID)
	if err != nil {
		return nil, nil, err
	}
	if task == nil {
		return nil, nil, ErrTaskNotFound
	}

	return user, task, nil
}
