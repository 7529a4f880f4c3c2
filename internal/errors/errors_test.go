package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/ultranum/internal/kernel"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", NewConfigError("unsupported word width %d", 12), "unsupported word width 12"},
		{"calculation", CalculationError{Cause: errors.New("boom")}, "boom"},
		{"calculation with backend", CalculationError{Backend: "uint256", Cause: errors.New("boom")}, "uint256: boom"},
		{"timeout", TimeoutError{Operation: "mul", Limit: 500 * time.Millisecond}, `operation "mul" timed out after 500ms`},
		{"validation", ValidationError{Field: "b", Message: "must not be empty"}, `validation error for "b": must not be empty`},
		{"mismatch", MismatchError{Backends: []string{"kernel", "gmp"}}, "results differ between backends [kernel gmp]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalculationErrorChain(t *testing.T) {
	t.Parallel()
	cause := &kernel.InvalidArgumentError{Op: "DivArrayShift", Reason: "divisor is zero", Err: kernel.ErrDivisionByZero}
	err := WrapError(CalculationError{Backend: "kernel", Cause: cause}, "evaluating %s", "div")

	if !errors.Is(err, kernel.ErrDivisionByZero) {
		t.Error("errors.Is should reach the kernel sentinel")
	}
	var invalid *kernel.InvalidArgumentError
	if !errors.As(err, &invalid) || invalid.Op != "DivArrayShift" {
		t.Errorf("errors.As found %+v", invalid)
	}
	var calc CalculationError
	if !errors.As(err, &calc) || calc.Backend != "kernel" {
		t.Errorf("errors.As found %+v", calc)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "ignored") != nil {
		t.Error("WrapError(nil, ...) should return nil")
	}
	err := WrapError(context.DeadlineExceeded, "backend %s", "gmp")
	if err.Error() != "backend gmp: context deadline exceeded" {
		t.Errorf("got %q", err.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("wrapped error lost its cause")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped", WrapError(context.Canceled, "stop"), true},
		{"kernel", kernel.ErrRemainderTooShort, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

type testColors struct{}

func (testColors) Red() string    { return "<r>" }
func (testColors) Yellow() string { return "<y>" }
func (testColors) Reset() string  { return "</>" }

func TestHandleCalculationError(t *testing.T) {
	t.Parallel()
	divErr := &kernel.InvalidArgumentError{Op: "DivArrayShift", Reason: "divisor is zero", Err: kernel.ErrDivisionByZero}
	tests := []struct {
		name     string
		err      error
		colors   ColorProvider
		wantCode int
		wantOut  string
	}{
		{"nil", nil, testColors{}, ExitSuccess, ""},
		{"deadline", context.DeadlineExceeded, testColors{}, ExitErrorTimeout, "<y>Evaluation timed out after 2s.</>"},
		{"timeout type", TimeoutError{Operation: "div", Limit: time.Second}, nil, ExitErrorTimeout, "Evaluation timed out after 2s."},
		{"canceled", WrapError(context.Canceled, "bench"), testColors{}, ExitErrorCanceled, "<y>Evaluation canceled after 2s.</>"},
		{"division by zero", CalculationError{Backend: "kernel", Cause: divErr}, testColors{}, ExitErrorGeneric, "<r>Division by zero: kernel: "},
		{"aliasing", &kernel.InvalidArgumentError{Op: "MulArray", Reason: "dst and src share memory", Err: kernel.ErrAliasedOperands}, nil, ExitErrorGeneric, "Invalid operand for MulArray: dst and src share memory"},
		{"config", NewConfigError("bad width"), nil, ExitErrorConfig, "Error after 2s: bad width"},
		{"validation", ValidationError{Field: "a", Message: "not a number"}, nil, ExitErrorConfig, `validation error for "a"`},
		{"mismatch", MismatchError{Backends: []string{"kernel"}}, nil, ExitErrorMismatch, "results differ"},
		{"generic", errors.New("disk on fire"), testColors{}, ExitErrorGeneric, "<r>Error after 2s: disk on fire</>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			code := HandleCalculationError(tt.err, 2*time.Second, &out, tt.colors)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantOut == "" && out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestExitCodesAreDistinct(t *testing.T) {
	t.Parallel()
	codes := []int{ExitSuccess, ExitErrorGeneric, ExitErrorTimeout, ExitErrorMismatch, ExitErrorConfig, ExitErrorCanceled}
	seen := make(map[int]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate exit code %d", c)
		}
		seen[c] = true
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled = %d, want 130", ExitErrorCanceled)
	}
}
