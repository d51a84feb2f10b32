package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Varun5711/tasknest/internal/database"
	usermodel "github.com/Varun5711/tasknest/internal/models/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type UserStorage struct {
	db *database.Manager
}

func NewUserStorage(db *database.Manager) *UserStorage {
	return &UserStorage{db: db}
}

func (s *UserStorage) CreateUser(ctx context.Context, email, passwordHash string) (*usermodel.User, error) {
	userID := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, created_at, updated_at
	`

	var user usermodel.User
	err := s.db.Pool().QueryRow(ctx, query,
		userID,
		email,
		passwordHash,
		now,
		now,
	).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user usermodel.User
	err := s.db.Pool().QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *UserStorage) GetUserByID(ctx context.Context, userID string) (*usermodel.User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user usermodel.User
	err := s.db.Pool().QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *UserStorage) GetUserByToken(ctx context.Context, access, token string) (*usermodel.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.created_at, u.updated_at
		FROM users u
		JOIN user_tokens t ON t.user_id = u.id
		WHERE t.access = $1 AND t.token = $2
	`

	var user usermodel.User
	err := s.db.Pool().QueryRow(ctx, query, access, token).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get user by token: %w", err)
	}

	return &user, nil
}

func (s *UserStorage) AddToken(ctx context.Context, userID, access, token string) error {
	query := `
		INSERT INTO user_tokens (user_id, access, token)
		VALUES ($1, $2, $3)
	`

	_, err := s.db.Pool().Exec(ctx, query, userID, access, token)
	if err != nil {
		return fmt.Errorf("failed to add token: %w", err)
	}

	return nil
}

func (s *UserStorage) RemoveToken(ctx context.Context, userID, token string) error {
	query := `
		DELETE FROM user_tokens
		WHERE user_id = $1 AND token = $2
	`

	// Removing an absent token is a no-op success, so RowsAffected is not checked.
	_, err := s.db.Pool().Exec(ctx, query, userID, token)
	if err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}

	return nil
}
