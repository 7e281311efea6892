package service

import (
	"errors"
	"testing"

	"github.com/jefferson5286/taskmanage/internal/model"
)

type taskFixture struct {
	auth  *Auth
	tasks *Tasks
	jeff  *Credentials
	kae   *Credentials
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()

	store := newTestStore(t)
	auth := NewAuth(store)
	guard := NewGuard(store)
	tasks := NewTasks(store, guard)

	jeff, err := auth.Register("jeff", "pw1")
	if err != nil {
		t.Fatalf("register jeff: %v", err)
	}
	kae, err := auth.Register("kaelly", "pw2")
	if err != nil {
		t.Fatalf("register kaelly: %v", err)
	}

	return &taskFixture{auth: auth, tasks: tasks, jeff: jeff, kae: kae}
}

func TestCreateRequiresValidToken(t *testing.T) {
	f := newTaskFixture(t)

	if _, err := f.tasks.Create(f.jeff.Reference, "bad-token", "Buy milk", "2%", model.StatusPending); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	ref, err := f.tasks.Create(f.jeff.Reference, f.jeff.Token, "Buy milk", "2%", model.StatusPending)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(ref) != 36 {
		t.Fatalf("expected 36-character task reference, got %q", ref)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	f := newTaskFixture(t)

	ref, err := f.tasks.Create(f.jeff.Reference, f.jeff.Token, "Buy milk", "2%", model.StatusPending)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// kaelly's valid credentials never reach jeff's task.
	if _, err := f.tasks.Update(f.kae.Reference, f.kae.Token, ref, "status", "completed"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on cross-user update, got %v", err)
	}
	if _, err := f.tasks.Delete(f.kae.Reference, ref); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on cross-user delete, got %v", err)
	}

	list, err := f.tasks.List(f.kae.Reference)
	if err != nil {
		t.Fatalf("list for kaelly: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("kaelly sees %d foreign tasks", len(list))
	}

	// The owner's reference pair still works.
	if _, err := f.tasks.Update(f.jeff.Reference, f.jeff.Token, ref, "status", "completed"); err != nil {
		t.Fatalf("owner update: %v", err)
	}
}

func TestUpdateBindsToRequestedTask(t *testing.T) {
	f := newTaskFixture(t)

	firstRef, err := f.tasks.Create(f.jeff.Reference, f.jeff.Token, "Buy milk", "2%", model.StatusPending)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	secondRef, err := f.tasks.Create(f.jeff.Reference, f.jeff.Token, "Walk dog", "around the block", model.StatusPending)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if _, err := f.tasks.Update(f.jeff.Reference, f.jeff.Token, secondRef, "status", "completed"); err != nil {
		t.Fatalf("update second: %v", err)
	}

	list, err := f.tasks.List(f.jeff.Reference)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, task := range list {
		switch task.Reference {
		case firstRef:
			if task.Status != model.StatusPending {
				t.Fatalf("update leaked onto the wrong task: first is %s", task.Status)
			}
		case secondRef:
			if task.Status != model.StatusCompleted {
				t.Fatalf("requested task not updated: second is %s", task.Status)
			}
		}
	}
}

func TestUpdateTitleConfirmsNewValue(t *testing.T) {
	f := newTaskFixture(t)

	ref, err := f.tasks.Create(f.jeff.Reference, f.jeff.Token, "Buy milk", "2%", model.StatusPending)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name, err := f.tasks.Update(f.jeff.Reference, f.jeff.Token, ref, "task", "Buy oat milk")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if name != "Buy oat milk" {
		t.Fatalf("expected the new title back, got %q", name)
	}
}

func TestDeleteRemovesTaskFromList(t *testing.T) {
	f := newTaskFixture(t)

	ref, err := f.tasks.Create(f.jeff.Reference, f.jeff.Token, "Buy milk", "2%", model.StatusPending)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name, err := f.tasks.Delete(f.jeff.Reference, ref)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if name != "Buy milk" {
		t.Fatalf("expected deleted task title, got %q", name)
	}

	list, err := f.tasks.List(f.jeff.Reference)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("deleted task still listed: %+v", list)
	}
}

func TestClearIsScopedAndIdempotent(t *testing.T) {
	f := newTaskFixture(t)

	for _, title := range []string{"one", "two", "three"} {
		if _, err := f.tasks.Create(f.jeff.Reference, f.jeff.Token, title, "desc", model.StatusPending); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	if _, err := f.tasks.Create(f.kae.Reference, f.kae.Token, "keep me", "desc", model.StatusPending); err != nil {
		t.Fatalf("create for kaelly: %v", err)
	}

	count, err := f.tasks.Clear(f.jeff.Reference)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 tasks cleared, got %d", count)
	}

	count, err = f.tasks.Clear(f.jeff.Reference)
	if err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected idempotent second clear, got %d", count)
	}

	kaeList, err := f.tasks.List(f.kae.Reference)
	if err != nil {
		t.Fatalf("list for kaelly: %v", err)
	}
	if len(kaeList) != 1 {
		t.Fatalf("clear crossed user boundary: kaelly has %d tasks", len(kaeList))
	}
}
