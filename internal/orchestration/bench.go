package orchestration

import (
	"context"
	"fmt"
	"math/big"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/ultranum/internal/metrics"
)

// BenchOptions configures a randomized benchmark.
type BenchOptions struct {
	Iterations int
	Width      int
	Words      int
	// Seed makes the generated requests reproducible. Iteration i always
	// sees the same request for a given seed, whatever the worker count.
	Seed uint64
	// Workers bounds concurrency; values below 1 select GOMAXPROCS.
	Workers int
	// Ops restricts the generated operations; empty means all of them.
	Ops []string
}

// OpStats accumulates timings for one operation.
type OpStats struct {
	Count int
	Total time.Duration
}

// Mean returns the average duration per evaluation.
func (s OpStats) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Mismatch records a request on which the evaluator and the oracle
// disagreed.
type Mismatch struct {
	Request Request
	Got     Outcome
	Want    Outcome
}

// BenchReport summarizes a benchmark run.
type BenchReport struct {
	Backend    string
	Oracle     string
	Iterations int
	Duration   time.Duration
	PerOp      map[string]OpStats
	Mismatches int
	// FirstMismatch is the mismatch with the lowest iteration index.
	FirstMismatch *Mismatch
}

// RunBenchmark evaluates opts.Iterations random requests with ev and checks
// each against oracle. Any evaluation error stops the run.
//
// Request i is derived from opts.Seed and i alone, so a run is reproducible
// whatever the number of workers.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - ev: The backend being measured.
//   - oracle: The backend whose outcomes are taken as correct.
//   - opts: The iteration count, window shape, seed, workers and operations.
//   - progressChan: Receives a ProgressUpdate per completion without
//     blocking. It may be nil and is never closed.
//   - rec: The metrics recorder, or nil.
//
// Returns:
//   - BenchReport: Timings per operation and the mismatches found.
//   - error: The first evaluation or context error, wrapped.
func RunBenchmark(ctx context.Context, ev, oracle Evaluator, opts BenchOptions, progressChan chan<- ProgressUpdate, rec *metrics.Recorder) (BenchReport, error) {
	ops := opts.Ops
	if len(ops) == 0 {
		ops = operations
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, max(opts.Iterations, 1))

	report := BenchReport{
		Backend:    ev.Name(),
		Oracle:     oracle.Name(),
		Iterations: opts.Iterations,
		PerOp:      make(map[string]OpStats, len(ops)),
	}
	var (
		mu            sync.Mutex
		next          atomic.Int64
		completed     atomic.Int64
		firstMismatch = -1
	)

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= opts.Iterations {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				req := randomRequest(opts, ops, i)

				t0 := time.Now()
				got, err := ev.Evaluate(ctx, req)
				d := time.Since(t0)
				rec.ObserveEvaluation(ev.Name(), req.Op, d, err)
				if err != nil {
					return fmt.Errorf("iteration %d, %v: %w", i, req, err)
				}
				want, err := oracle.Evaluate(ctx, req)
				if err != nil {
					return fmt.Errorf("oracle %s, iteration %d: %w", oracle.Name(), i, err)
				}

				mu.Lock()
				s := report.PerOp[req.Op]
				s.Count++
				s.Total += d
				report.PerOp[req.Op] = s
				if !got.Equal(want) {
					report.Mismatches++
					rec.ObserveMismatch()
					if firstMismatch < 0 || i < firstMismatch {
						firstMismatch = i
						report.FirstMismatch = &Mismatch{Request: req, Got: got, Want: want}
					}
				}
				mu.Unlock()

				n := int(completed.Add(1))
				if progressChan != nil {
					select {
					case progressChan <- ProgressUpdate{Completed: n}:
					default:
					}
				}
			}
		})
	}
	err := g.Wait()
	report.Duration = time.Since(start)
	return report, err
}

// randomRequest derives iteration i's request from the seed alone.
func randomRequest(opts BenchOptions, ops []string, i int) Request {
	r := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
	bitsTotal := opts.Width * opts.Words
	req := Request{
		Op:    ops[r.IntN(len(ops))],
		A:     randomOperand(r, bitsTotal),
		B:     randomOperand(r, bitsTotal),
		Shift: uint(r.IntN(bitsTotal + 1)),
		Width: opts.Width,
		Words: opts.Words,
	}
	if req.Op == OpDiv && req.B.Sign() == 0 {
		req.B.SetInt64(1)
	}
	return req
}

// randomOperand returns a value below 2^maxBits whose bit length is itself
// uniform, so small operands show up as often as full-width ones.
func randomOperand(r *rand.Rand, maxBits int) *big.Int {
	n := r.IntN(maxBits + 1)
	v := new(big.Int)
	for n > 0 {
		chunk := min(n, 64)
		v.Lsh(v, uint(chunk))
		v.Or(v, new(big.Int).SetUint64(r.Uint64()>>(64-chunk)))
		n -= chunk
	}
	return v
}
