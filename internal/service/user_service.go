package service

import (
	"context"
	"fmt"

	"github.com/Varun5711/tasknest/internal/auth"
	usermodel "github.com/Varun5711/tasknest/internal/models/user"
	"github.com/Varun5711/tasknest/internal/storage"
	"github.com/Varun5711/tasknest/internal/validation"
)

// AccessAuth is the access scope bound into tokens issued by signup and
// login. Verification matches the scope decoded from the token, not this
// literal, so tokens carrying other scopes resolve against their own rows.
const AccessAuth = "auth"

type UserService struct {
	store      storage.UserStore
	jwtManager *auth.JWTManager
}

func NewUserService(store storage.UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		store:      store,
		jwtManager: jwtManager,
	}
}

// Register creates a user and issues its first auth token. The plaintext
// password is hashed exactly once, here, before anything is persisted.
func (s *UserService) Register(ctx context.Context, email, password string) (*usermodel.User, string, error) {
	email = validation.NormalizeEmail(email)

	if err := validation.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, email, passwordHash)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and issues a fresh auth token. Any mismatch
// yields ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*usermodel.User, string, error) {
	email = validation.NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// IssueToken signs a token binding the user id and the auth scope, then
// appends it to the user's stored token list.
func (s *UserService) IssueToken(ctx context.Context, user *usermodel.User) (string, error) {
	token, err := s.jwtManager.GenerateToken(user.ID, AccessAuth)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.store.AddToken(ctx, user.ID, AccessAuth, token); err != nil {
		return "", err
	}

	return token, nil
}

// GetByToken resolves a bearer token to its user. The token must both
// verify cryptographically and still be present in storage under the
// decoded access scope; either failure collapses to ErrInvalidToken.
func (s *UserService) GetByToken(ctx context.Context, token string) (*usermodel.User, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.store.GetUserByToken(ctx, claims.Access, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	if user == nil || user.ID != claims.UserID {
		return nil, ErrInvalidToken
	}

	return user, nil
}

// Logout removes the literal token from the user's stored token list.
// Removing a token that is already gone succeeds.
func (s *UserService) Logout(ctx context.Context, userID, token string) error {
	return s.store.RemoveToken(ctx, userID, token)
}
