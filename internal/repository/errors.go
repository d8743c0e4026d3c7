package repository

import "errors"

var (
	// ErrUnauthenticated is returned when an operation that requires an
	// owner identity is called without one.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrNotFound is returned when a lookup by id yields no row.
	ErrNotFound = errors.New("not found")
)
