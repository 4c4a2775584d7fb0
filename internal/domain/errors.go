package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrStorage       = errors.New("storage error")
	ErrUnauthorized  = errors.New("unauthorized")
)

// ErrorKind is the machine-readable class reported to clients.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation_error"
	KindStorage    ErrorKind = "storage_error"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindAuth       ErrorKind = "unauthorized"
	KindInternal   ErrorKind = "internal_error"
	KindRateLimit  ErrorKind = "rate_limited"
)

func (k ErrorKind) String() string { return string(k) }

// KindOf classifies err. Unknown errors are internal. A StorageError is
// always a storage failure, whatever its cause wraps.
func KindOf(err error) ErrorKind {
	var se *StorageError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return KindStorage
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrUnauthorized):
		return KindAuth
	case errors.Is(err, ErrStorage):
		return KindStorage
	}
	return KindInternal
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StorageError reports a failure of the durable store. It is retryable by
// the caller; nothing in this module retries it automatically.
//
// When Err is a context deadline the write outcome is unknown: the record
// may or may not have been committed.
type StorageError struct {
	// Stage is the transition that failed.
	Stage SubmissionStage
	Op    string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrStorage and the underlying cause to errors.Is/As.
func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// Timeout reports whether the store call ran out of time.
func (e *StorageError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// NewStorageError wraps err as a StorageError for op at stage.
func NewStorageError(stage SubmissionStage, op string, err error) *StorageError {
	return &StorageError{Stage: stage, Op: op, Err: err}
}
