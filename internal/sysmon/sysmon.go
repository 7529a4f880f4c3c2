// Package sysmon samples host CPU and memory load while a benchmark runs, so
// that timings taken on a busy machine can be recognized as such.
package sysmon

import (
	"context"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one reading of host-wide usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample reads host-wide CPU usage since the previous call and current
// memory usage. Fields it cannot read are left at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Summary aggregates the samples taken by a Sampler.
type Summary struct {
	Samples int
	PeakCPU float64
	MeanCPU float64
	PeakMem float64
}

// Sampler reads Stats on a fixed interval until stopped.
type Sampler struct {
	interval time.Duration
	read     func() Stats

	mu      sync.Mutex
	summary Summary
	sumCPU  float64
}

// NewSampler returns a Sampler reading host stats every interval.
func NewSampler(interval time.Duration) *Sampler {
	return &Sampler{interval: interval, read: Sample}
}

// Run samples until ctx is done. It primes the CPU counter first so the
// first recorded sample covers one full interval.
func (s *Sampler) Run(ctx context.Context) {
	s.read()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.record(s.read())
		}
	}
}

func (s *Sampler) record(st Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary.Samples++
	s.sumCPU += st.CPUPercent
	s.summary.PeakCPU = max(s.summary.PeakCPU, st.CPUPercent)
	s.summary.PeakMem = max(s.summary.PeakMem, st.MemPercent)
	s.summary.MeanCPU = s.sumCPU / float64(s.summary.Samples)
}

// Summary returns the aggregate of the samples recorded so far.
func (s *Sampler) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}
