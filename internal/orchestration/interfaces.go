package orchestration

import (
	"io"
	"sync"
	"time"
)

// EvaluationResult is the outcome of one backend evaluating a request. It
// is the shared type between orchestration and presentation.
type EvaluationResult struct {
	// Name is the backend that produced the result.
	Name    string
	Outcome Outcome
	// Duration is the wall time of the evaluation.
	Duration time.Duration
	// Err is set when the evaluation failed; Outcome is then meaningless.
	Err error
}

// ProgressUpdate reports that Completed of the benchmark iterations are
// done.
type ProgressUpdate struct {
	Completed int
}

// ProgressReporter displays benchmark progress. DisplayProgress runs in its
// own goroutine until progressChan is closed, then calls wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, progressChan, total, out)
}

// NullProgressReporter drains updates without displaying anything. Used in
// quiet mode.
type NullProgressReporter struct{}

// DisplayProgress drains progressChan and marks wg done.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders evaluation results. Implementations live in the
// cli package.
type ResultPresenter interface {
	// PresentComparisonTable shows every backend's duration and status.
	PresentComparisonTable(results []EvaluationResult, out io.Writer)
	// PresentStatus shows the overall verdict of a comparison.
	PresentStatus(status string, out io.Writer)
	// PresentResult shows the agreed outcome of req.
	PresentResult(result EvaluationResult, req Request, out io.Writer)
	// HandleError prints err and returns the process exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
