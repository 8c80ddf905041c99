package handlers

import (
	"context"
	"net/http"

	dom "taskbill/internal/domain"
	"taskbill/internal/dto"
	"taskbill/internal/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceService interface {
	List(ctx context.Context) ([]dom.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (dom.Invoice, bool, error)
	Create(ctx context.Context, amount int32) (dom.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, amount int32, paid bool) (dom.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InvoiceHandler struct {
	svc InvoiceService
	log *logger.Logger
}

func NewInvoiceHandler(svc InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, log: log.With("handler", "invoice")}
}

// Create godoc
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInvoiceRequest  true  "Invoice body"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	inv, err := h.svc.Create(c.Request.Context(), *req.Amount)
	if err != nil {
		writeError(c, h.log, err, "invoice not found", "failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, invoiceToResponse(inv))
}

// List godoc
// @Summary      List all invoices
// @Tags         invoices
// @Produce      json
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "invoice not found", "failed to fetch invoices")
		return
	}
	out := make([]dto.InvoiceResponse, len(list))
	for i := range list {
		out[i] = invoiceToResponse(list[i])
	}
	c.JSON(http.StatusOK, out)
}

// GetByID godoc
// @Summary      Get an invoice by ID
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID (UUID)"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	inv, found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err, "invoice not found", "failed to fetch invoice")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoiceToResponse(inv))
}

// Update godoc
// @Summary      Replace an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Invoice ID (UUID)"
// @Param        body  body      dto.UpdateInvoiceRequest  true  "New field values"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	inv, err := h.svc.Update(c.Request.Context(), id, *req.Amount, *req.Paid)
	if err != nil {
		writeError(c, h.log, err, "invoice not found", "failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, invoiceToResponse(inv))
}

// Delete godoc
// @Summary      Delete an invoice
// @Tags         invoices
// @Param        id   path  string  true  "Invoice ID (UUID)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err, "invoice not found", "failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

func invoiceToResponse(inv dom.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{ID: inv.ID, Amount: inv.Amount, Paid: inv.Paid}
}
