package repo

import (
	"context"
	"errors"
	"fmt"

	dom "taskbill/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of *pgxpool.Pool the repositories use.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// jstNow is the store-side update timestamp: NOW() read as Tokyo wall time,
// then turned back into an absolute instant for the timestamptz column.
const jstNow = `((NOW() AT TIME ZONE 'Asia/Tokyo') AT TIME ZONE 'Asia/Tokyo')`

// stampUpdated is the SET clause for updated_at. created_at comes from the
// app host clock, so the store stamp is clamped to keep updated_at >= created_at.
const stampUpdated = `updated_at = GREATEST(created_at, ` + jstNow + `)`

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// translate maps raw pgx errors onto the domain taxonomy.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, dom.ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %v", op, dom.ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isUniqueViolation(err error) bool {
	var pge *pgconn.PgError
	return errors.As(err, &pge) && pge.Code == uniqueViolation
}
