package storage

import "errors"

// Common storage errors.
var (
	// ErrNotFound is returned when no graph is stored for a URI.
	ErrNotFound = errors.New("entity not found")

	// ErrEmptyGraph is returned when there is nothing to store for a URI.
	ErrEmptyGraph = errors.New("empty entity graph")
)
