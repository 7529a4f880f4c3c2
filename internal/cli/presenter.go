package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	apperrors "github.com/agbru/ultranum/internal/errors"
	"github.com/agbru/ultranum/internal/format"
	"github.com/agbru/ultranum/internal/orchestration"
	"github.com/agbru/ultranum/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress renders progress with a spinner until progressChan closes.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output. In quiet mode only the bare result is printed.
type CLIResultPresenter struct {
	Quiet bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable lists every backend with its duration and status.
// Padding is computed by hand since the cells carry escape codes.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.EvaluationResult, out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Backend")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, len(displayDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sBackend%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Backend")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := displayDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentStatus prints the verdict line, colored by its first word.
func (p CLIResultPresenter) PresentStatus(status string, out io.Writer) {
	if p.Quiet {
		return
	}
	color := ui.ColorGreen()
	switch {
	case strings.HasPrefix(status, "CRITICAL"):
		color = ui.ColorRed()
	case strings.HasPrefix(status, "failure"):
		color = ui.ColorYellow()
	}
	fmt.Fprintf(out, "\nGlobal status: %s%s%s\n", color, status, ui.ColorReset())
}

// PresentResult prints the result of the fastest successful backend.
func (p CLIResultPresenter) PresentResult(result orchestration.EvaluationResult, req orchestration.Request, out io.Writer) {
	if p.Quiet {
		DisplayQuietResult(out, result.Outcome, req)
		return
	}
	DisplayResult(result, req, out)
}

// HandleError prints err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}
