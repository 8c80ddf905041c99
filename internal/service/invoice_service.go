package service

import (
	"context"
	"fmt"
	"time"

	"taskbill/internal/cache"
	dom "taskbill/internal/domain"
	"taskbill/internal/platform/logger"

	"github.com/google/uuid"
)

type InvoiceService struct {
	repo dom.InvoiceRepository
	rd   *reader[dom.Invoice]
	now  func() time.Time
}

// NewInvoiceService creates an InvoiceService. If c is nil, list caching is disabled.
func NewInvoiceService(r dom.InvoiceRepository, c *cache.EntityCache[dom.Invoice], log *logger.Logger) *InvoiceService {
	return &InvoiceService{
		repo: r,
		rd:   &reader[dom.Invoice]{repo: r, cache: c, log: log},
		now:  dom.Now,
	}
}

func (s *InvoiceService) WithClock(now func() time.Time) *InvoiceService {
	s.now = now
	return s
}

func (s *InvoiceService) List(ctx context.Context) ([]dom.Invoice, error) {
	return s.rd.list(ctx)
}

func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (dom.Invoice, bool, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InvoiceService) Create(ctx context.Context, amount int32) (dom.Invoice, error) {
	inv, err := dom.NewInvoice(amount, s.now())
	if err != nil {
		return dom.Invoice{}, fmt.Errorf("new invoice: %w", err)
	}
	out, err := s.repo.Create(ctx, inv)
	if err != nil {
		return dom.Invoice{}, err
	}
	s.rd.invalidate(ctx)
	return out, nil
}

func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, amount int32, paid bool) (dom.Invoice, error) {
	existing, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dom.Invoice{}, err
	}
	if !ok {
		return dom.Invoice{}, fmt.Errorf("invoice %s: %w", id, dom.ErrNotFound)
	}
	existing.Amount = amount
	existing.Paid = paid

	out, err := s.repo.Update(ctx, existing)
	if err != nil {
		return dom.Invoice{}, err
	}
	s.rd.invalidate(ctx)
	return out, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.rd.invalidate(ctx)
	return nil
}
