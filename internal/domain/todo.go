package domain

import (
	"time"

	"github.com/google/uuid"
)

// Domain entity: the business record itself.
// Knows nothing about Gin, Postgres or Redis.
type Todo struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTodo builds a not-yet-persisted todo with a time-ordered ID.
// Both timestamps are set to now.
func NewTodo(title, description string, now time.Time) (Todo, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Todo{}, err
	}
	return Todo{
		ID:          id,
		Title:       title,
		Description: &description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
