package cli

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/ultranum/internal/errors"
	"github.com/agbru/ultranum/internal/kernel"
	"github.com/agbru/ultranum/internal/orchestration"
	"github.com/agbru/ultranum/internal/ui"
)

func TestPresentComparisonTable(t *testing.T) {
	ui.InitTheme(true)
	results := []orchestration.EvaluationResult{
		{Name: "kernel", Duration: 1500 * time.Microsecond},
		{Name: "reference"},
		{Name: "uint256", Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()
	for _, want := range []string{"Comparison Summary", "Backend", "kernel", "1ms", "< 1µs", "Success", "Failure (boom)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table does not contain %q:\n%s", want, out)
		}
	}

	buf.Reset()
	CLIResultPresenter{Quiet: true}.PresentComparisonTable(results, &buf)
	if buf.Len() != 0 {
		t.Errorf("quiet presenter printed %q", buf.String())
	}
}

func TestPresentResult_Quiet(t *testing.T) {
	t.Parallel()
	req := orchestration.Request{Op: orchestration.OpAdd, A: big.NewInt(1), B: big.NewInt(2), Width: 8, Words: 1}
	var buf bytes.Buffer
	CLIResultPresenter{Quiet: true}.PresentResult(orchestration.EvaluationResult{Outcome: orchestration.Outcome{Value: big.NewInt(3)}}, req, &buf)
	if buf.String() != "3\n" {
		t.Errorf("got %q, want %q", buf.String(), "3\n")
	}
}

func TestHandleError(t *testing.T) {
	ui.InitTheme(true)
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"division by zero", &kernel.InvalidArgumentError{Op: "div", Err: kernel.ErrDivisionByZero}, apperrors.ExitErrorGeneric, "Division by zero"},
		{"mismatch", apperrors.MismatchError{Backends: []string{"a", "b"}}, apperrors.ExitErrorMismatch, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tt.err, time.Second, &buf)
			if code != tt.code {
				t.Errorf("code = %d, want %d", code, tt.code)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestCLIColorProvider(t *testing.T) {
	ui.InitTheme(false)
	defer ui.InitTheme(true)
	var c CLIColorProvider
	if c.Red() != ui.ColorRed() || c.Yellow() != ui.ColorYellow() || c.Reset() != ui.ColorReset() {
		t.Error("color provider does not follow the theme")
	}
}

func TestPresentStatus(t *testing.T) {
	ui.InitTheme(true)
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentStatus("success. All backends agree.", &buf)
	if buf.String() != "\nGlobal status: success. All backends agree.\n" {
		t.Errorf("got %q", buf.String())
	}
	buf.Reset()
	CLIResultPresenter{Quiet: true}.PresentStatus("CRITICAL. x", &buf)
	if buf.Len() != 0 {
		t.Errorf("quiet presenter printed %q", buf.String())
	}
}
