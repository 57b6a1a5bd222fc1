package domain

import "errors"

var (
	// ErrNotFound is returned when no record matches the given ID.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidValue is returned when a storage value does not belong to
	// the closed set a field accepts. Mapping never casts through unchecked.
	ErrInvalidValue = errors.New("invalid value")
)
