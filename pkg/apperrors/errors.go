// Package apperrors defines the error taxonomy surfaced to administrators.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any write.
	ErrValidation = errors.New("validation failed")

	// ErrNotAuthorized marks a failed identity or role check.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrPersistence marks a failed data-store call.
	ErrPersistence = errors.New("persistence failure")

	// ErrRemoteProcedure marks a failed remote procedure call.
	ErrRemoteProcedure = errors.New("remote procedure failure")

	// ErrNotFound marks a lookup of an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a request that is invalid in the current state.
	ErrConflict = errors.New("conflict")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotAuthorizedError is returned by the HTTP auth layer.
type NotAuthorizedError struct {
	Reason string
}

func (e *NotAuthorizedError) Error() string {
	if e.Reason == "" {
		return ErrNotAuthorized.Error()
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthorized, e.Reason)
}

func (e *NotAuthorizedError) Unwrap() error { return ErrNotAuthorized }

// PersistenceError wraps a repository failure with the operation that produced it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }

// NewPersistenceError returns nil when err is nil.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// RemoteProcedureError carries the procedure's own message. Error returns it
// unchanged so that it can be shown to the administrator verbatim.
type RemoteProcedureError struct {
	Procedure string
	Message   string
	Err       error
}

func (e *RemoteProcedureError) Error() string {
	return e.Message
}

func (e *RemoteProcedureError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRemoteProcedure}
	}
	return []error{ErrRemoteProcedure, e.Err}
}

// IsValidation reports whether err is a validation-class failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
