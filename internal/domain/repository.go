package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract shared by every entity.
//
// FindByID reports a missing row as ok == false, not as an error.
// Create persists the entity as given; it never assigns ID or timestamps.
// Update stamps UpdatedAt from the store clock and fails with ErrNotFound
// when the ID is unknown. Delete fails with ErrNotFound when no row was removed.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (T, bool, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TodoRepository interface {
	Repository[Todo]
}

type InvoiceRepository interface {
	Repository[Invoice]
}
