package metrics

import (
	"errors"
	"fmt"
)

// Common errors for composite declarations
var (
	// ErrNoLabels indicates a vector declaration without label dimensions
	ErrNoLabels = errors.New("vector requires one or more labels")

	// ErrDuplicateField indicates two declarations sharing one field name
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownKind indicates a declaration with an unrecognized metric kind
	ErrUnknownKind = errors.New("unknown metric kind")
)

// ValidationError reports a declaration defect detected by this package
// before the registry is touched for the offending field. Errors raised by
// the engine itself (invalid metric names, unsorted buckets, registration
// conflicts) are returned unwrapped.
type ValidationError struct {
	Field string // declared field name, if known
	Kind  Kind   // declared metric kind
	Err   error  // underlying error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("metrics: field %s (%s): %v", e.Field, e.Kind, e.Err)
	}
	return fmt.Sprintf("metrics: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
