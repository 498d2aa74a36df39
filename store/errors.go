package store

import "errors"

var (
	// ErrMissingField is returned when a required field is missing or empty.
	ErrMissingField = errors.New("arbor: required field missing")

	// ErrDuplicateValue is returned when a unique constraint is violated.
	ErrDuplicateValue = errors.New("arbor: duplicate value for unique field")

	// ErrParentNotFound is returned when a create references a parent that
	// doesn't exist.
	ErrParentNotFound = errors.New("arbor: parent entity not found")

	// ErrNotFound is returned when an update or delete targets an
	// identifier absent from the store.
	ErrNotFound = errors.New("arbor: entity not found")
)
