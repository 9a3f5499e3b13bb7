package document

import (
	"errors"
	"fmt"
)

// Document errors.
var (
	// ErrInvalidScope indicates a scope references something outside the document.
	ErrInvalidScope = errors.New("document: invalid scope")

	// ErrMalformed indicates a document violates a structural invariant.
	ErrMalformed = errors.New("document: malformed document")

	// ErrDecode indicates a serialized document could not be decoded.
	ErrDecode = errors.New("document: decode failed")
)

// ScopeError describes why a point could not be resolved.
type ScopeError struct {
	Point  Point
	Reason string
}

// Error implements error.
func (e *ScopeError) Error() string {
	return fmt.Sprintf("invalid scope at %s: %s", e.Point, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidScope.
func (e *ScopeError) Unwrap() error {
	return ErrInvalidScope
}

// StructureError reports the path of a node that breaks a structural rule.
type StructureError struct {
	Path   Path
	Reason string
}

// Error implements error.
func (e *StructureError) Error() string {
	return fmt.Sprintf("malformed node at %s: %s", e.Path, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformed.
func (e *StructureError) Unwrap() error {
	return ErrMalformed
}
