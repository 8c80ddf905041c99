package dto

import "github.com/google/uuid"

type CreateInvoiceRequest struct {
	Amount *int32 `json:"amount" binding:"required"`
}

type UpdateInvoiceRequest struct {
	Amount *int32 `json:"amount" binding:"required"`
	Paid   *bool  `json:"paid" binding:"required"`
}

type InvoiceResponse struct {
	ID     uuid.UUID `json:"id"`
	Amount int32     `json:"amount"`
	Paid   bool      `json:"paid"`
}
