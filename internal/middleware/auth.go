package middleware

import (
	"context"
	"net/http"

	"github.com/Varun5711/tasknest/internal/logger"
	usermodel "github.com/Varun5711/tasknest/internal/models/user"
)

// AuthHeader is the request header carrying the signed bearer token on
// every protected route.
const AuthHeader = "x-auth"

type contextKey string

const (
	userKey  contextKey = "user"
	tokenKey contextKey = "token"
)

// UserResolver resolves a bearer token to the user it belongs to.
type UserResolver interface {
	GetByToken(ctx context.Context, token string) (*usermodel.User, error)
}

type AuthMiddleware struct {
	users UserResolver
	log   *logger.Logger
}

func NewAuthMiddleware(users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{
		users: users,
		log:   logger.New("auth-middleware"),
	}
}

// RequireAuth rejects requests whose x-auth header is absent or does not
// resolve to a user. Rejections are a bare 401; the body never says why.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(AuthHeader)
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		user, err := m.users.GetByToken(r.Context(), token)
		if err != nil {
			m.log.Debug("rejected token: %v", err)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// GetUser returns the authenticated user attached by RequireAuth.
func GetUser(ctx context.Context) *usermodel.User {
	if user, ok := ctx.Value(userKey).(*usermodel.User); ok {
		return user
	}
	return nil
}

// GetToken returns the literal token the request authenticated with.
func GetToken(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey).(string); ok {
		return token
	}
	return ""
}
