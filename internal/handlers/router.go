package handlers

import (
	"net/http"
	"time"

	"github.com/Varun5711/tasknest/internal/middleware"
)

// NewRouter wires the HTTP surface. Todo routes and the user-scoped user
// routes sit behind the auth middleware; signup and login do not.
func NewRouter(users *UserHandler, todos *TodoHandler, authMW *middleware.AuthMiddleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handleHealth)

	mux.HandleFunc("POST /users", users.Register)
	mux.HandleFunc("POST /users/login", users.Login)
	mux.HandleFunc("GET /users/me", authMW.RequireAuth(users.Me))
	mux.HandleFunc("DELETE /users/me/token", authMW.RequireAuth(users.Logout))

	mux.HandleFunc("POST /todos", authMW.RequireAuth(todos.Create))
	mux.HandleFunc("GET /todos", authMW.RequireAuth(todos.List))
	mux.HandleFunc("GET /todos/{id}", authMW.RequireAuth(todos.GetByID))
	mux.HandleFunc("PATCH /todos/{id}", authMW.RequireAuth(todos.Update))
	mux.HandleFunc("DELETE /todos/{id}", authMW.RequireAuth(todos.Delete))

	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
