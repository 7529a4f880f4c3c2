package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when the divisor of a division is zero.
	ErrDivisionByZero = errors.New("kernel: division by zero")
	// ErrRemainderTooShort is returned when the remainder output cannot hold
	// every significant word of the remainder.
	ErrRemainderTooShort = errors.New("kernel: remainder span too short")
	// ErrAliasedOperands is returned when the destination and the source of an
	// operation share memory.
	ErrAliasedOperands = errors.New("kernel: destination and source overlap")
)

// InvalidArgumentError reports an argument rejected before any word was
// modified.
type InvalidArgumentError struct {
	// Op is the operation that rejected the argument.
	Op string
	// Reason describes what was wrong.
	Reason string
	// Err is an optional sentinel the error wraps.
	Err error
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid argument: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Reason)
}

// Unwrap returns the wrapped sentinel, if any.
func (e *InvalidArgumentError) Unwrap() error { return e.Err }

func invalid(op, reason string, sentinel error) error {
	return &InvalidArgumentError{Op: op, Reason: reason, Err: sentinel}
}
