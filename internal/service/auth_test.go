package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jefferson5286/taskmanage/internal/repository"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	store, err := repository.Open(filepath.Join(t.TempDir(), "taskmanage.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRegisterIssuesCredentials(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store)

	creds, err := auth.Register("jeff", "pw1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(creds.Reference) != 36 || len(creds.Token) != 36 {
		t.Fatalf("expected 36-character reference and token, got %q / %q", creds.Reference, creds.Token)
	}

	user, err := store.GetUserByReference(creds.Reference)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user == nil {
		t.Fatal("registered user not persisted")
	}
	if user.PasswordHash == "pw1" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store)

	if _, err := auth.Register("jeff", "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := auth.Register("jeff", "other")
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store)

	if _, err := auth.Register("jeff", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := auth.Login("jeff", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if _, err := auth.Login("nobody", "pw1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginRotatesTokenAndRevokesPrevious(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store)
	guard := NewGuard(store)

	registered, err := auth.Register("jeff", "pw1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := guard.RequireValidToken(registered.Token, registered.Reference); err != nil {
		t.Fatalf("fresh token rejected: %v", err)
	}

	loggedIn, err := auth.Login("jeff", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.Token == registered.Token {
		t.Fatal("login did not rotate the access token")
	}
	if loggedIn.Reference != registered.Reference {
		t.Fatalf("login changed the user reference: %s != %s", loggedIn.Reference, registered.Reference)
	}

	// The previous token is invalid immediately after the rotation.
	if _, err := guard.RequireValidToken(registered.Token, registered.Reference); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for stale token, got %v", err)
	}
	if _, err := guard.RequireValidToken(loggedIn.Token, loggedIn.Reference); err != nil {
		t.Fatalf("new token rejected: %v", err)
	}
}

func TestGuardUnknownUser(t *testing.T) {
	store := newTestStore(t)
	guard := NewGuard(store)

	if _, err := guard.RequireUser("no-such-ref"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := guard.RequireValidToken("any-token", "no-such-ref"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound before token check, got %v", err)
	}
	if _, _, err := guard.RequireTaskOwned("task-ref", "no-such-ref"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound before task check, got %v", err)
	}
}
