package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ProgressWithETA tracks completed units of work and estimates the time
// left from the average rate so far.
type ProgressWithETA struct {
	mu        sync.Mutex
	total     int
	done      int
	startTime time.Time
	now       func() time.Time
}

// NewProgressWithETA starts tracking total units of work.
func NewProgressWithETA(total int) *ProgressWithETA {
	return &ProgressWithETA{total: total, startTime: time.Now(), now: time.Now}
}

// Add records n more completed units and returns the completed fraction
// and the estimated time left. The ETA is zero until some work is done.
func (p *ProgressWithETA) Add(n int) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = min(p.done+n, p.total)
	return p.stateLocked()
}

// State returns the completed fraction and the estimated time left.
func (p *ProgressWithETA) State() (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *ProgressWithETA) stateLocked() (float64, time.Duration) {
	if p.total <= 0 {
		return 1, 0
	}
	progress := float64(p.done) / float64(p.total)
	if p.done == 0 || p.done == p.total {
		return progress, 0
	}
	elapsed := p.now().Sub(p.startTime)
	perUnit := elapsed / time.Duration(p.done)
	return progress, perUnit * time.Duration(p.total-p.done)
}

// ProgressBar renders progress, clamped to [0, 1], as a bar of length runes.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders a bar followed by the percentage and ETA.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%s %5.1f%% ETA %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
