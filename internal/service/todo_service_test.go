package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Varun5711/tasknest/internal/models"
	"github.com/Varun5711/tasknest/internal/storage"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestTodoCreate_EmptyText(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStore())

	_, err := svc.Create(context.Background(), "owner-1", "   ")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got: %v", err)
	}
}

func TestTodoList_InsertionOrder(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStore())
	ctx := context.Background()

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		if _, err := svc.Create(ctx, "owner-1", text); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	todos, err := svc.List(ctx, "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != len(texts) {
		t.Fatalf("expected %d todos, got %d", len(texts), len(todos))
	}
	for i, text := range texts {
		if todos[i].Text != text {
			t.Errorf("expected todos[%d].Text '%s', got '%s'", i, text, todos[i].Text)
		}
	}
}

func TestTodo_OwnerIsolation(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStore())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-a", "owner a's task")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	todos, err := svc.List(ctx, "owner-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("expected owner-b to see no todos, got %d", len(todos))
	}

	if _, err := svc.Get(ctx, todo.ID, "owner-b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for Get as non-owner, got: %v", err)
	}

	update := models.UpdateTodoRequest{Text: strPtr("hijacked")}
	if _, err := svc.Update(ctx, todo.ID, "owner-b", update); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for Update as non-owner, got: %v", err)
	}

	if _, err := svc.Delete(ctx, todo.ID, "owner-b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for Delete as non-owner, got: %v", err)
	}

	// The owner still sees the original.
	got, err := svc.Get(ctx, todo.ID, "owner-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "owner a's task" {
		t.Errorf("expected untouched text, got '%s'", got.Text)
	}
}

func TestTodoUpdate_CompletedSetsTimestamp(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStore())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", "finish report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(ctx, todo.ID, "owner-1", models.UpdateTodoRequest{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Completed {
		t.Error("expected completed to be true")
	}
	if updated.CompletedAt == nil {
		t.Error("expected a completion timestamp")
	}
}

func TestTodoUpdate_AbsentCompletedResets(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStore())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", "finish report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Update(ctx, todo.ID, "owner-1", models.UpdateTodoRequest{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A later update that does not say completed=true clears both fields.
	updated, err := svc.Update(ctx, todo.ID, "owner-1", models.UpdateTodoRequest{Text: strPtr("new text")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Completed {
		t.Error("expected completed to reset to false")
	}
	if updated.CompletedAt != nil {
		t.Errorf("expected completedAt to reset to nil, got %v", updated.CompletedAt)
	}
	if updated.Text != "new text" {
		t.Errorf("expected text 'new text', got '%s'", updated.Text)
	}
}

func TestTodoUpdate_ExplicitFalseResets(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStore())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", "finish report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Update(ctx, todo.ID, "owner-1", models.UpdateTodoRequest{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(ctx, todo.ID, "owner-1", models.UpdateTodoRequest{Completed: boolPtr(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Completed || updated.CompletedAt != nil {
		t.Error("expected explicit completed=false to clear completion state")
	}
}

func TestTodoUpdate_EmptyText(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStore())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", "finish report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Update(ctx, todo.ID, "owner-1", models.UpdateTodoRequest{Text: strPtr("  ")})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got: %v", err)
	}
}

func TestTodoDelete_ReturnsDeleted(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStore())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", "to be removed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := svc.Delete(ctx, todo.ID, "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != todo.ID {
		t.Errorf("expected deleted todo %s, got %s", todo.ID, deleted.ID)
	}

	if _, err := svc.Get(ctx, todo.ID, "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got: %v", err)
	}
}
