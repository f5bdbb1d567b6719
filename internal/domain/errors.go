package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation signals a malformed request.
	ErrValidation = errors.New("validation failed")
	// ErrProjectNotFound signals a missing project.
	ErrProjectNotFound = errors.New("Project not found")
	// ErrSystemNotFound signals a missing system document.
	ErrSystemNotFound = errors.New("System not found")
)

// ValidationError names the offending field and the violated constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation creates a validation error for the given field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// InternalError wraps an unexpected collaborator failure.
// The underlying message is kept in Error() so clients can diagnose it.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// NewInternal wraps err as an internal failure of op.
func NewInternal(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}
