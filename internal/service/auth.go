package service

import (
	"errors"

	"github.com/jefferson5286/taskmanage/internal/pkg/hash"
	"github.com/jefferson5286/taskmanage/internal/pkg/token"
	"github.com/jefferson5286/taskmanage/internal/repository"
)

var (
	ErrUsernameExists  = errors.New("username already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid access token")
)

// Credentials is the outcome of a successful register or login: the user's
// external reference and the currently active access token.
type Credentials struct {
	Reference string
	Token     string
}

// Auth implements registration and login
type Auth struct {
	store *repository.Store
}

func NewAuth(store *repository.Store) *Auth {
	return &Auth{store: store}
}

// Register creates a new user with a hashed password, a fresh access token
// and a fresh external reference.
func (a *Auth) Register(username, password string) (*Credentials, error) {
	exists, err := a.store.UserExists(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	passwordHash, err := hash.Hash(password)
	if err != nil {
		return nil, err
	}

	accessToken := token.New()
	reference := token.New()

	if _, err := a.store.CreateUser(username, passwordHash, accessToken, reference); err != nil {
		return nil, err
	}

	return &Credentials{Reference: reference, Token: accessToken}, nil
}

// Login verifies the password and rotates the access token. The previous
// token is silently revoked by the overwrite.
func (a *Auth) Login(username, password string) (*Credentials, error) {
	user, err := a.store.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := hash.Verify(user.PasswordHash, password); err != nil {
		if errors.Is(err, hash.ErrMismatch) {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}

	newToken := token.New()
	if err := a.store.UpdateAccessToken(user.ID, newToken); err != nil {
		return nil, err
	}

	return &Credentials{Reference: user.Reference, Token: newToken}, nil
}
