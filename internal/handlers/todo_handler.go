package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Varun5711/tasknest/internal/logger"
	"github.com/Varun5711/tasknest/internal/middleware"
	"github.com/Varun5711/tasknest/internal/models"
	"github.com/Varun5711/tasknest/internal/service"
	"github.com/google/uuid"
)

type TodoHandler struct {
	todos *service.TodoService
	log   *logger.Logger
}

func NewTodoHandler(todos *service.TodoService) *TodoHandler {
	return &TodoHandler{
		todos: todos,
		log:   logger.New("todo-handler"),
	}
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	owner := middleware.GetUser(r.Context())

	todo, err := h.todos.Create(r.Context(), owner.ID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("Failed to create todo: %v", err)
		respondError(w, http.StatusBadRequest, "failed to create todo")
		return
	}

	respondJSON(w, http.StatusOK, models.TodoResponse{Todo: todo})
}

// List handles GET /todos, returning only the caller's todos in creation
// order.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUser(r.Context())

	todos, err := h.todos.List(r.Context(), owner.ID)
	if err != nil {
		h.log.Error("Failed to list todos: %v", err)
		respondError(w, http.StatusBadRequest, "failed to list todos")
		return
	}

	respondJSON(w, http.StatusOK, models.ListTodosResponse{Todos: todos})
}

// GetByID handles GET /todos/{id}.
func (h *TodoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "todo not found")
		return
	}

	owner := middleware.GetUser(r.Context())

	todo, err := h.todos.Get(r.Context(), id, owner.ID)
	if err != nil {
		h.respondTodoError(w, err, "failed to get todo")
		return
	}

	respondJSON(w, http.StatusOK, models.TodoResponse{Todo: todo})
}

// Update handles PATCH /todos/{id}.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "todo not found")
		return
	}

	var req models.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	owner := middleware.GetUser(r.Context())

	todo, err := h.todos.Update(r.Context(), id, owner.ID, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondTodoError(w, err, "failed to update todo")
		return
	}

	respondJSON(w, http.StatusOK, models.TodoResponse{Todo: todo})
}

// Delete handles DELETE /todos/{id}, returning the removed todo.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "todo not found")
		return
	}

	owner := middleware.GetUser(r.Context())

	todo, err := h.todos.Delete(r.Context(), id, owner.ID)
	if err != nil {
		h.respondTodoError(w, err, "failed to delete todo")
		return
	}

	respondJSON(w, http.StatusOK, models.TodoResponse{Todo: todo})
}

// todoID validates the path id as a UUID before any store round-trip.
// Malformed ids are indistinguishable from missing todos.
func todoID(r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func (h *TodoHandler) respondTodoError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, service.ErrNotFound) {
		respondError(w, http.StatusNotFound, "todo not found")
		return
	}
	h.log.Error("%s: %v", fallback, err)
	respondError(w, http.StatusBadRequest, fallback)
}
