package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes.
const (
	ExitSuccess       = 0   // Successful execution.
	ExitErrorGeneric  = 1   // Any other failure, including rejected operands.
	ExitErrorTimeout  = 2   // The evaluation exceeded its deadline.
	ExitErrorMismatch = 3   // Two backends disagreed on a result.
	ExitErrorConfig   = 4   // Invalid flags or environment.
	ExitErrorCanceled = 130 // Interrupted by SIGINT or SIGTERM.
)

// ConfigError reports invalid user configuration, such as an unknown
// operation or an unsupported word width.
type ConfigError struct {
	Message string
}

// Error returns the message.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError carries the failure of one backend evaluation.
type CalculationError struct {
	// Backend names the evaluator that failed. It may be empty.
	Backend string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e CalculationError) Error() string {
	if e.Backend == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Backend, e.Cause)
}

// Unwrap returns the original error so errors.Is and errors.As can walk the
// chain down to the kernel sentinels.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports an operation that exceeded its deadline.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

// Error implements the error interface.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports an operand that failed validation before any
// backend saw it.
type ValidationError struct {
	// Field is the name of the rejected input.
	Field string
	// Message explains the failure.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports backends that returned different results for the
// same request.
type MismatchError struct {
	Backends []string
}

// Error lists the backends that disagreed.
func (e MismatchError) Error() string {
	return fmt.Sprintf("results differ between backends %v", e.Backends)
}

// WrapError wraps err with a formatted context message. It returns nil when
// err is nil.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a context cancellation or deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
