package orchestration

import (
	"time"

	"github.com/agbru/ultranum/internal/format"
)

// ProgressAggregator turns the running completion counts of a benchmark
// into a fraction and an ETA.
type ProgressAggregator struct {
	state *format.ProgressWithETA
	total int
	last  int
}

// NewProgressAggregator tracks total iterations. It returns nil when total
// is not positive.
func NewProgressAggregator(total int) *ProgressAggregator {
	if total <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(total), total: total}
}

// AggregatedProgress is the state after one update.
type AggregatedProgress struct {
	Completed int
	Fraction  float64
	ETA       time.Duration
}

// Update records a completion count. Counts that go backwards are ignored,
// since workers may deliver updates out of order.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	if update.Completed > a.last {
		a.state.Add(update.Completed - a.last)
		a.last = update.Completed
	}
	fraction, eta := a.state.State()
	return AggregatedProgress{Completed: a.last, Fraction: fraction, ETA: eta}
}

// State returns the current fraction and ETA without recording anything.
func (a *ProgressAggregator) State() (float64, time.Duration) {
	return a.state.State()
}

// Total returns the number of iterations being tracked.
func (a *ProgressAggregator) Total() int { return a.total }

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
