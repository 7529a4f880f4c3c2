//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/ultranum/internal/format"
	"github.com/agbru/ultranum/internal/orchestration"
)

const (
	// ProgressRefreshRate is how often the spinner suffix is redrawn.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the animation.
	Start()
	// Stop halts the animation and clears the line.
	Stop()
	// UpdateSuffix sets the text shown after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with a progress bar and ETA while a
// benchmark of total iterations runs. It returns, and calls wg.Done, once
// progressChan is closed.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(total)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	render := func(fraction float64, eta time.Duration) {
		s.UpdateSuffix(" " + format.FormatProgressBarWithETA(fraction, eta, ProgressBarWidth))
	}
	render(agg.State())
	s.Start()
	defer func() {
		s.Stop()
		fraction, _ := agg.State()
		fmt.Fprintf(out, "%s done\n", format.FormatProgressBarWithETA(fraction, 0, ProgressBarWidth))
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			p := agg.Update(update)
			render(p.Fraction, p.ETA)
		case <-ticker.C:
			render(agg.State())
		}
	}
}
