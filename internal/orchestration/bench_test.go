package orchestration

import (
	"context"
	"errors"
	"math/big"
	"testing"
)

func TestRunBenchmark_KernelAgreesWithReference(t *testing.T) {
	t.Parallel()
	for _, width := range []int{8, 16, 32, 64} {
		opts := BenchOptions{Iterations: 300, Width: width, Words: 3, Seed: 42, Workers: 4}
		report, err := RunBenchmark(context.Background(), NewKernelEvaluator(), ReferenceEvaluator{}, opts, nil, nil)
		if err != nil {
			t.Fatalf("width %d: %v", width, err)
		}
		if report.Mismatches != 0 {
			t.Fatalf("width %d: %d mismatches, first %+v", width, report.Mismatches, report.FirstMismatch)
		}
		total := 0
		for _, s := range report.PerOp {
			total += s.Count
		}
		if total != opts.Iterations {
			t.Errorf("width %d: counted %d evaluations, want %d", width, total, opts.Iterations)
		}
	}
}

// offByOne adds one to every value its inner evaluator returns.
type offByOne struct{ Evaluator }

func (o offByOne) Evaluate(ctx context.Context, req Request) (Outcome, error) {
	out, err := o.Evaluator.Evaluate(ctx, req)
	if out.Value != nil {
		out.Value = new(big.Int).Add(out.Value, big.NewInt(1))
	}
	return out, err
}

func TestRunBenchmark_CountsMismatches(t *testing.T) {
	t.Parallel()
	opts := BenchOptions{Iterations: 50, Width: 16, Words: 2, Seed: 7, Workers: 3, Ops: []string{OpAdd, OpMul}}
	updates := make(chan ProgressUpdate, opts.Iterations)
	report, err := RunBenchmark(context.Background(), offByOne{NewKernelEvaluator()}, ReferenceEvaluator{}, opts, updates, nil)
	if err != nil {
		t.Fatal(err)
	}
	if report.Mismatches != opts.Iterations {
		t.Errorf("Mismatches = %d, want %d", report.Mismatches, opts.Iterations)
	}
	if report.FirstMismatch == nil {
		t.Fatal("FirstMismatch not recorded")
	}
	first := randomRequest(opts, opts.Ops, 0)
	if report.FirstMismatch.Request.A.Cmp(first.A) != 0 || report.FirstMismatch.Request.Op != first.Op {
		t.Errorf("FirstMismatch is not iteration 0: %v", report.FirstMismatch.Request)
	}
	if len(updates) != opts.Iterations {
		t.Errorf("got %d progress updates, want %d", len(updates), opts.Iterations)
	}
	for op := range report.PerOp {
		if op != OpAdd && op != OpMul {
			t.Errorf("unexpected op %q", op)
		}
	}
}

func TestRunBenchmark_StopsOnError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	opts := BenchOptions{Iterations: 100, Width: 8, Words: 1, Seed: 1, Workers: 2}
	_, err := RunBenchmark(context.Background(), stubEvaluator{name: "broken", err: boom}, ReferenceEvaluator{}, opts, nil, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRunBenchmark_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := BenchOptions{Iterations: 10, Width: 8, Words: 1}
	if _, err := RunBenchmark(ctx, NewKernelEvaluator(), ReferenceEvaluator{}, opts, nil, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRandomRequest_Deterministic(t *testing.T) {
	t.Parallel()
	opts := BenchOptions{Width: 32, Words: 4, Seed: 99}
	for i := range 50 {
		a := randomRequest(opts, operations, i)
		b := randomRequest(opts, operations, i)
		if a.String() != b.String() {
			t.Fatalf("iteration %d differs: %v vs %v", i, a, b)
		}
		if a.A.BitLen() > 128 || a.B.BitLen() > 128 || a.Shift > 128 {
			t.Fatalf("iteration %d outside the window: %v", i, a)
		}
		if a.Op == OpDiv && a.B.Sign() == 0 {
			t.Fatalf("iteration %d divides by zero", i)
		}
	}
}

func TestOpStatsMean(t *testing.T) {
	t.Parallel()
	if (OpStats{}).Mean() != 0 {
		t.Error("empty stats should have a zero mean")
	}
	if got := (OpStats{Count: 4, Total: 100}).Mean(); got != 25 {
		t.Errorf("Mean = %v, want 25", got)
	}
}
