package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Varun5711/tasknest/internal/models"
	"github.com/Varun5711/tasknest/internal/storage"
)

type TodoService struct {
	store storage.TodoStore
}

func NewTodoService(store storage.TodoStore) *TodoService {
	return &TodoService{store: store}
}

func (s *TodoService) Create(ctx context.Context, ownerID, text string) (*models.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrValidation)
	}

	return s.store.Create(ctx, ownerID, text)
}

func (s *TodoService) List(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

func (s *TodoService) Get(ctx context.Context, id, ownerID string) (*models.Todo, error) {
	todo, err := s.store.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, ErrNotFound
	}

	return todo, nil
}

// Update applies the completion policy: an explicit completed=true stamps
// completedAt with the current time; anything else (false or absent)
// resets both completed and completedAt.
func (s *TodoService) Update(ctx context.Context, id, ownerID string, req models.UpdateTodoRequest) (*models.Todo, error) {
	if req.Text != nil && strings.TrimSpace(*req.Text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", ErrValidation)
	}

	completed := false
	var completedAt *time.Time
	if req.Completed != nil && *req.Completed {
		completed = true
		now := time.Now()
		completedAt = &now
	}

	todo, err := s.store.UpdateByIDAndOwner(ctx, id, ownerID, req.Text, completed, completedAt)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, ErrNotFound
	}

	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id, ownerID string) (*models.Todo, error) {
	todo, err := s.store.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, ErrNotFound
	}

	return todo, nil
}
