package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")

	// ErrPersistence marks a durable slot that could not be read or written.
	// Callers recover by keeping (or starting from) the in-memory record.
	ErrPersistence = errors.New("persistence error")

	// ErrSubmissionTimeout is returned when the collector did not settle
	// within the submission deadline. The request may still be delivered.
	ErrSubmissionTimeout = errors.New("submission timed out")

	// ErrSubmissionTransport is returned when the outbound request failed
	// before the deadline (DNS, connection, TLS, circuit open).
	ErrSubmissionTransport = errors.New("submission transport error")

	// ErrSubmissionInProgress is returned when a submit is attempted while
	// another one is still in flight for the same store. It wraps ErrConflict.
	ErrSubmissionInProgress = fmt.Errorf("submission already in progress: %w", ErrConflict)
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "This field is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
