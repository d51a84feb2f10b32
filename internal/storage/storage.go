package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Varun5711/tasknest/internal/models"
	usermodel "github.com/Varun5711/tasknest/internal/models/user"
)

// ErrDuplicateEmail reports a violation of the unique email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// UserStore persists user records and their issued tokens. Lookup methods
// return (nil, nil) when no row matches.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*usermodel.User, error)
	GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error)
	GetUserByID(ctx context.Context, userID string) (*usermodel.User, error)

	// GetUserByToken resolves the user holding a stored token entry that
	// matches both the access scope and the literal token string. A token
	// that verifies cryptographically but has been removed from storage
	// resolves no user, which is how revocation works.
	GetUserByToken(ctx context.Context, access, token string) (*usermodel.User, error)

	AddToken(ctx context.Context, userID, access, token string) error
	RemoveToken(ctx context.Context, userID, token string) error
}

// TodoStore persists task records. Every owner-scoped method filters by id
// and owner inside the query itself, so a task is never visible through
// another owner's id even transiently.
type TodoStore interface {
	Create(ctx context.Context, ownerID, text string) (*models.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Todo, error)
	UpdateByIDAndOwner(ctx context.Context, id, ownerID string, text *string, completed bool, completedAt *time.Time) (*models.Todo, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Todo, error)
}
