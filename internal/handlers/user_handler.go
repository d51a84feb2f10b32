package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Varun5711/tasknest/internal/logger"
	"github.com/Varun5711/tasknest/internal/middleware"
	usermodel "github.com/Varun5711/tasknest/internal/models/user"
	"github.com/Varun5711/tasknest/internal/service"
	"github.com/Varun5711/tasknest/internal/storage"
)

type UserHandler struct {
	users *service.UserService
	log   *logger.Logger
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{
		users: users,
		log:   logger.New("user-handler"),
	}
}

// Register handles POST /users. The created user comes back in the body
// (secrets omitted) and the issued token in the x-auth header.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req usermodel.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, token, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, storage.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("Failed to register user: %v", err)
		respondError(w, http.StatusBadRequest, "failed to create user")
		return
	}

	w.Header().Set(middleware.AuthHeader, token)
	respondJSON(w, http.StatusOK, user)
}

// Login handles POST /users/login. Any credential mismatch is a 400 with
// the same message.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req usermodel.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Error("Failed to log in: %v", err)
		}
		respondError(w, http.StatusBadRequest, "invalid email or password")
		return
	}

	w.Header().Set(middleware.AuthHeader, token)
	respondJSON(w, http.StatusOK, user)
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	respondJSON(w, http.StatusOK, user)
}

// Logout handles DELETE /users/me/token by revoking the token the request
// authenticated with.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	token := middleware.GetToken(r.Context())

	if err := h.users.Logout(r.Context(), user.ID, token); err != nil {
		h.log.Error("Failed to remove token: %v", err)
		respondError(w, http.StatusBadRequest, "failed to log out")
		return
	}

	w.WriteHeader(http.StatusOK)
}
