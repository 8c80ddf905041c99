package dto

import "github.com/google/uuid"

// CreateTodoRequest is the JSON body for POST /todos.
// Description must be present but may be empty.
type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

// UpdateTodoRequest is a full replace: every field must be sent.
type UpdateTodoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"`
	Completed   *bool   `json:"completed" binding:"required"`
}

// TodoResponse leaves out the audit timestamps.
type TodoResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
