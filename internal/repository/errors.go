package repository

import "errors"

var (
	// ErrNotFound is returned when an entity id or the stored document itself
	// does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert collides with an existing
	// identity (today only subscriber emails).
	ErrDuplicate = errors.New("already exists")
)
