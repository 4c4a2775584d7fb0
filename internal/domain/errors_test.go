package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("user_id", "required")

	if got := err.Error(); got != "validation: user_id: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "user_id", Message: "required"},
		{Field: "feedback", Message: "required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := fmt.Errorf("submit: %w", NewStorageError(StagePersisted, "insert feedback", cause))

	if !errors.Is(err, ErrStorage) {
		t.Fatal("errors.Is(err, ErrStorage) = false")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause should be reachable through StorageError")
	}

	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatal("errors.As(*StorageError) = false")
	}
	if se.Stage != StagePersisted {
		t.Errorf("stage = %q, want %q", se.Stage, StagePersisted)
	}
	if se.Timeout() {
		t.Error("plain failure must not report a timeout")
	}
}

func TestStorageError_Timeout(t *testing.T) {
	t.Parallel()

	err := NewStorageError(StagePersisted, "insert feedback", fmt.Errorf("exec: %w", context.DeadlineExceeded))
	if !err.Timeout() {
		t.Fatal("Timeout() = false for deadline error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("deadline should be reachable")
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("user_id", "required"), KindValidation},
		{"storage", NewStorageError(StagePersisted, "insert", errors.New("x")), KindStorage},
		{"storage wrapping validation", NewStorageError(StagePersisted, "insert", fmt.Errorf("feedback: %w", ErrValidation)), KindStorage},
		{"storage wrapping not found", fmt.Errorf("review: %w", NewStorageError("", "update", ErrNotFound)), KindStorage},
		{"wrapped not found", fmt.Errorf("feedback 1: %w", ErrNotFound), KindNotFound},
		{"conflict", ErrAlreadyExists, KindConflict},
		{"unauthorized", ErrUnauthorized, KindAuth},
		{"unknown", errors.New("boom"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrStorage, ErrUnauthorized,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
