package repo

import (
	"context"
	"errors"

	dom "taskbill/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const invoiceColumns = `id, amount, paid, created_at, updated_at`

type PGInvoiceRepo struct {
	db DB
}

var _ dom.InvoiceRepository = (*PGInvoiceRepo)(nil)

func NewPGInvoiceRepo(db DB) *PGInvoiceRepo {
	return &PGInvoiceRepo{db: db}
}

func scanInvoice(row pgx.Row) (dom.Invoice, error) {
	var inv dom.Invoice
	err := row.Scan(&inv.ID, &inv.Amount, &inv.Paid, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

func (r *PGInvoiceRepo) FindAll(ctx context.Context) ([]dom.Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices`)
	if err != nil {
		return nil, translate("invoice find all", err)
	}
	defer rows.Close()
	list := []dom.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, translate("invoice scan", err)
		}
		list = append(list, inv)
	}
	return list, translate("invoice rows", rows.Err())
}

func (r *PGInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (dom.Invoice, bool, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Invoice{}, false, nil
	}
	if err != nil {
		return dom.Invoice{}, false, translate("invoice find by id", err)
	}
	return inv, true, nil
}

func (r *PGInvoiceRepo) Create(ctx context.Context, inv dom.Invoice) (dom.Invoice, error) {
	query := `
		INSERT INTO invoices (id, amount, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + invoiceColumns
	out, err := scanInvoice(r.db.QueryRow(ctx, query,
		inv.ID, inv.Amount, inv.Paid, inv.CreatedAt, inv.UpdatedAt))
	if err != nil {
		return dom.Invoice{}, translate("invoice create", err)
	}
	return out, nil
}

func (r *PGInvoiceRepo) Update(ctx context.Context, inv dom.Invoice) (dom.Invoice, error) {
	query := `
		UPDATE invoices SET amount = $2, paid = $3, ` + stampUpdated + `
		WHERE id = $1
		RETURNING ` + invoiceColumns
	out, err := scanInvoice(r.db.QueryRow(ctx, query, inv.ID, inv.Amount, inv.Paid))
	if err != nil {
		return dom.Invoice{}, translate("invoice update", err)
	}
	return out, nil
}

func (r *PGInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return translate("invoice delete", err)
	}
	if tag.RowsAffected() == 0 {
		return translate("invoice delete", pgx.ErrNoRows)
	}
	return nil
}
