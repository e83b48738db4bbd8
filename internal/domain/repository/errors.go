package repository

import "errors"

// Sentinel errors shared by every repository implementation so the
// application layer never depends on driver error types.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
