package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/ultranum/internal/kernel"
)

// ColorProvider supplies the escape sequences used when printing errors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColor struct{}

func (noColor) Red() string    { return "" }
func (noColor) Yellow() string { return "" }
func (noColor) Reset() string  { return "" }

// ExitCode returns the exit code for err without printing anything.
func ExitCode(err error) int {
	var (
		cfgErr      ConfigError
		valErr      ValidationError
		timeoutErr  TimeoutError
		mismatchErr MismatchError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeoutErr):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// HandleCalculationError prints a one-line description of err to out and
// returns the matching exit code. A nil err prints nothing.
//
// Parameters:
//   - err: The error returned by the evaluation, or nil.
//   - duration: Time spent before the failure; zero omits it.
//   - out: Destination of the message.
//   - colors: Escape sequences to use; nil disables color.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	code := ExitCode(err)
	if err == nil {
		return code
	}
	if colors == nil {
		colors = noColor{}
	}
	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration)
	}

	var invalid *kernel.InvalidArgumentError
	switch {
	case code == ExitErrorTimeout:
		fmt.Fprintf(out, "%sEvaluation timed out%s.%s\n", colors.Yellow(), suffix, colors.Reset())
	case code == ExitErrorCanceled:
		fmt.Fprintf(out, "%sEvaluation canceled%s.%s\n", colors.Yellow(), suffix, colors.Reset())
	case errors.Is(err, kernel.ErrDivisionByZero):
		fmt.Fprintf(out, "%sDivision by zero: %v%s\n", colors.Red(), err, colors.Reset())
	case errors.As(err, &invalid):
		fmt.Fprintf(out, "%sInvalid operand for %s: %s%s\n", colors.Red(), invalid.Op, invalid.Reason, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError%s: %v%s\n", colors.Red(), suffix, err, colors.Reset())
	}
	return code
}
