package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Varun5711/tasknest/internal/database"
	"github.com/Varun5711/tasknest/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TodoStorage struct {
	db *database.Manager
}

func NewTodoStorage(db *database.Manager) *TodoStorage {
	return &TodoStorage{db: db}
}

func (s *TodoStorage) Create(ctx context.Context, ownerID, text string) (*models.Todo, error) {
	todoID := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO todos (id, text, completed, completed_at, user_id, created_at, updated_at)
		VALUES ($1, $2, FALSE, NULL, $3, $4, $5)
		RETURNING id, text, completed, completed_at, user_id, created_at, updated_at
	`

	var todo models.Todo
	err := s.db.Pool().QueryRow(ctx, query,
		todoID,
		text,
		ownerID,
		now,
		now,
	).Scan(
		&todo.ID,
		&todo.Text,
		&todo.Completed,
		&todo.CompletedAt,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return &todo, nil
}

func (s *TodoStorage) ListByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	query := `
		SELECT id, text, completed, completed_at, user_id, created_at, updated_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.Pool().Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.Text,
			&todo.Completed,
			&todo.CompletedAt,
			&todo.OwnerID,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, &todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}

	return todos, nil
}

func (s *TodoStorage) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Todo, error) {
	query := `
		SELECT id, text, completed, completed_at, user_id, created_at, updated_at
		FROM todos
		WHERE id = $1 AND user_id = $2
	`

	var todo models.Todo
	err := s.db.Pool().QueryRow(ctx, query, id, ownerID).Scan(
		&todo.ID,
		&todo.Text,
		&todo.Completed,
		&todo.CompletedAt,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return &todo, nil
}

func (s *TodoStorage) UpdateByIDAndOwner(ctx context.Context, id, ownerID string, text *string, completed bool, completedAt *time.Time) (*models.Todo, error) {
	query := `
		UPDATE todos
		SET text = COALESCE($3, text),
			completed = $4,
			completed_at = $5,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, text, completed, completed_at, user_id, created_at, updated_at
	`

	var todo models.Todo
	err := s.db.Pool().QueryRow(ctx, query, id, ownerID, text, completed, completedAt).Scan(
		&todo.ID,
		&todo.Text,
		&todo.Completed,
		&todo.CompletedAt,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return &todo, nil
}

func (s *TodoStorage) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Todo, error) {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
		RETURNING id, text, completed, completed_at, user_id, created_at, updated_at
	`

	var todo models.Todo
	err := s.db.Pool().QueryRow(ctx, query, id, ownerID).Scan(
		&todo.ID,
		&todo.Text,
		&todo.Completed,
		&todo.CompletedAt,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to delete todo: %w", err)
	}

	return &todo, nil
}
