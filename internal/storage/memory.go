package storage

import (
	"context"
	"sync"
	"time"

	"github.com/Varun5711/tasknest/internal/models"
	usermodel "github.com/Varun5711/tasknest/internal/models/user"
	"github.com/google/uuid"
)

// MemoryUserStore is an in-memory UserStore used by tests, so services and
// handlers can be constructed without a database.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*usermodel.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]*usermodel.User),
	}
}

func (s *MemoryUserStore) CreateUser(ctx context.Context, email, passwordHash string) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	now := time.Now()
	user := &usermodel.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user

	return copyUser(user), nil
}

func (s *MemoryUserStore) GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}

	return nil, nil
}

func (s *MemoryUserStore) GetUserByID(ctx context.Context, userID string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, nil
	}

	return copyUser(user), nil
}

func (s *MemoryUserStore) GetUserByToken(ctx context.Context, access, token string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		for _, t := range u.Tokens {
			if t.Access == access && t.Token == token {
				return copyUser(u), nil
			}
		}
	}

	return nil, nil
}

func (s *MemoryUserStore) AddToken(ctx context.Context, userID, access, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return nil
	}

	user.Tokens = append(user.Tokens, usermodel.AuthToken{Access: access, Token: token})
	return nil
}

func (s *MemoryUserStore) RemoveToken(ctx context.Context, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return nil
	}

	kept := user.Tokens[:0]
	for _, t := range user.Tokens {
		if t.Token != token {
			kept = append(kept, t)
		}
	}
	user.Tokens = kept

	return nil
}

func copyUser(u *usermodel.User) *usermodel.User {
	clone := *u
	clone.Tokens = append([]usermodel.AuthToken(nil), u.Tokens...)
	return &clone
}

// MemoryTodoStore is an in-memory TodoStore used by tests. A slice keeps
// insertion order, matching the ordering contract of ListByOwner.
type MemoryTodoStore struct {
	mu    sync.RWMutex
	todos []*models.Todo
}

func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{
		todos: make([]*models.Todo, 0),
	}
}

func (s *MemoryTodoStore) Create(ctx context.Context, ownerID, text string) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	todo := &models.Todo{
		ID:        uuid.New().String(),
		Text:      text,
		Completed: false,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.todos = append(s.todos, todo)

	return copyTodo(todo), nil
}

func (s *MemoryTodoStore) ListByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]*models.Todo, 0)
	for _, t := range s.todos {
		if t.OwnerID == ownerID {
			todos = append(todos, copyTodo(t))
		}
	}

	return todos, nil
}

func (s *MemoryTodoStore) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.todos {
		if t.ID == id && t.OwnerID == ownerID {
			return copyTodo(t), nil
		}
	}

	return nil, nil
}

func (s *MemoryTodoStore) UpdateByIDAndOwner(ctx context.Context, id, ownerID string, text *string, completed bool, completedAt *time.Time) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.todos {
		if t.ID == id && t.OwnerID == ownerID {
			if text != nil {
				t.Text = *text
			}
			t.Completed = completed
			t.CompletedAt = completedAt
			t.UpdatedAt = time.Now()
			return copyTodo(t), nil
		}
	}

	return nil, nil
}

func (s *MemoryTodoStore) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID == id && t.OwnerID == ownerID {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return copyTodo(t), nil
		}
	}

	return nil, nil
}

func copyTodo(t *models.Todo) *models.Todo {
	clone := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		clone.CompletedAt = &at
	}
	return &clone
}
