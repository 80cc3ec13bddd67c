package domain

import "errors"

var (
	// ErrInvalidGridShape marks an empty, jagged or non-square matrix.
	ErrInvalidGridShape = errors.New("invalid grid shape")
	// ErrInvalidBase marks a cell outside the allowed alphabet.
	ErrInvalidBase = errors.New("invalid base")
	// ErrNotFound is returned by storage lookups that miss.
	ErrNotFound = errors.New("record not found")
)
