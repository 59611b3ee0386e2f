package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for request validation.
var (
	ErrMissingNodes      = errors.New("nodes is required")
	ErrMissingEdges      = errors.New("edges is required")
	ErrMissingID         = errors.New("id is required")
	ErrInvalidIdentifier = errors.New("identifier must be a string or a number")
	ErrTooManyElements   = errors.New("too many graph elements")
)

// ErrNodeField returns err annotated with the index of the offending node.
func ErrNodeField(index int, err error) error {
	return fmt.Errorf("nodes[%d]: %w", index, err)
}

// ErrElementLimit returns an ErrTooManyElements describing the limit that was hit.
func ErrElementLimit(got, limit int) error {
	return fmt.Errorf("%w: %d nodes and edges exceeds maximum of %d", ErrTooManyElements, got, limit)
}
