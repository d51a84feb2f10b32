package models

import "time"

// Todo serializes its id under the "_id" wire key, matching what API
// clients already rely on.
type Todo struct {
	ID          string     `json:"_id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	OwnerID     string     `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest uses pointer fields so handlers can tell an absent
// field apart from an explicit zero value.
type UpdateTodoRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type TodoResponse struct {
	Todo *Todo `json:"todo"`
}

type ListTodosResponse struct {
	Todos []*Todo `json:"todos"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
