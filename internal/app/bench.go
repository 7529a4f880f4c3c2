package app

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/ultranum/internal/cli"
	apperrors "github.com/agbru/ultranum/internal/errors"
	"github.com/agbru/ultranum/internal/logging"
	"github.com/agbru/ultranum/internal/metrics"
	"github.com/agbru/ultranum/internal/orchestration"
	"github.com/agbru/ultranum/internal/sysmon"
)

const sysmonInterval = 500 * time.Millisecond

// benchPair returns the evaluator under test and the oracle it is checked
// against. "all" benchmarks the kernel.
func (a *Application) benchPair() (ev, oracle orchestration.Evaluator, ok bool) {
	name := a.Config.Backend
	if name == "all" {
		name = "kernel"
	}
	ev, ok = a.Registry.Get(name)
	if !ok {
		return nil, nil, false
	}
	oracleName := "reference"
	if name == oracleName {
		oracleName = "kernel"
	}
	oracle, ok = a.Registry.Get(oracleName)
	return ev, oracle, ok
}

// runBench checks Config.Bench random requests against the oracle and
// reports timings, host load and allocations.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{Quiet: a.Config.Quiet}
	ev, oracle, ok := a.benchPair()
	if !ok {
		return presenter.HandleError(apperrors.NewConfigError("backend %q is not available for benchmarking", a.Config.Backend), 0, a.ErrWriter)
	}
	if l, limited := ev.(orchestration.WindowLimiter); limited && !l.Supports(orchestration.Request{Width: a.Config.Width, Words: a.Config.Words}) {
		return presenter.HandleError(apperrors.NewConfigError("backend %s: %v", ev.Name(), orchestration.ErrUnsupportedWindow), 0, a.ErrWriter)
	}

	opts := orchestration.BenchOptions{
		Iterations: a.Config.Bench,
		Width:      a.Config.Width,
		Words:      a.Config.Words,
		Seed:       uint64(a.Config.Seed),
		Workers:    a.Config.Workers,
	}
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode([]orchestration.Evaluator{ev}, out)
	}
	a.Logger.Info("benchmark starting",
		logging.String("backend", ev.Name()),
		logging.String("oracle", oracle.Name()),
		logging.Int("iterations", opts.Iterations),
		logging.Int("workers", opts.Workers))

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
	}
	progressChan := make(chan orchestration.ProgressUpdate, opts.Workers*4)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, opts.Iterations, out)

	sampleCtx, stopSampling := context.WithCancel(ctx)
	sampler := sysmon.NewSampler(sysmonInterval)
	var samplerWg sync.WaitGroup
	samplerWg.Add(1)
	go func() {
		defer samplerWg.Done()
		sampler.Run(sampleCtx)
	}()

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()
	report, err := orchestration.RunBenchmark(ctx, ev, oracle, opts, progressChan, a.Recorder)
	delta := mc.Snapshot().Sub(before)

	close(progressChan)
	displayWg.Wait()
	stopSampling()
	samplerWg.Wait()

	if err != nil {
		a.Logger.Error("benchmark aborted", err, logging.Int("mismatches", report.Mismatches))
		return presenter.HandleError(err, report.Duration, out)
	}
	a.Logger.Info("benchmark finished",
		logging.Int("mismatches", report.Mismatches),
		logging.Float64("seconds", report.Duration.Seconds()))

	if !a.Config.Quiet {
		cli.DisplayBenchReport(report, out)
		cli.DisplaySystemLoad(sampler.Summary(), out)
		cli.DisplayMemoryStats(delta, out)
	}
	if report.Mismatches > 0 {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}
