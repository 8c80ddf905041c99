package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is a billing record. Amount is stored as given, no currency scaling.
type Invoice struct {
	ID     uuid.UUID
	Amount int32
	Paid   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInvoice builds an unpaid invoice with a time-ordered ID.
func NewInvoice(amount int32, now time.Time) (Invoice, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Invoice{}, err
	}
	return Invoice{
		ID:        id,
		Amount:    amount,
		Paid:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
