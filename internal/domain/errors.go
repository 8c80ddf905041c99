package domain

import "errors"

var (
	// ErrNotFound means the targeted ID has no row in the store.
	ErrNotFound = errors.New("not found")
	// ErrConflict is a store constraint rejection, e.g. a duplicate ID on insert.
	ErrConflict = errors.New("conflict")
)
