package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/ultranum/internal/errors"
	"github.com/agbru/ultranum/internal/metrics"
)

const tracerName = "github.com/agbru/ultranum/internal/orchestration"

// ExecuteEvaluations runs req on every evaluator concurrently and returns
// one result per evaluator, in the same order. A failing evaluator does not
// cancel the others.
//
// Each evaluation runs in its own tracing span. Errors other than context
// cancellation are wrapped in a CalculationError naming the backend.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - evaluators: The backends to run.
//   - req: The validated request every backend evaluates.
//   - rec: The metrics recorder, or nil.
//
// Returns:
//   - []EvaluationResult: One result per evaluator, in input order.
func ExecuteEvaluations(ctx context.Context, evaluators []Evaluator, req Request, rec *metrics.Recorder) []EvaluationResult {
	results := make([]EvaluationResult, len(evaluators))
	var g errgroup.Group
	for i, ev := range evaluators {
		g.Go(func() error {
			results[i] = evaluate(ctx, ev, req, rec)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func evaluate(ctx context.Context, ev Evaluator, req Request, rec *metrics.Recorder) EvaluationResult {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "evaluate",
		trace.WithAttributes(
			attribute.String("ultranum.backend", ev.Name()),
			attribute.String("ultranum.op", req.Op),
			attribute.Int("ultranum.width", req.Width),
			attribute.Int("ultranum.words", req.Words),
		))
	defer span.End()

	start := time.Now()
	out, err := ev.Evaluate(ctx, req)
	d := time.Since(start)
	rec.ObserveEvaluation(ev.Name(), req.Op, d, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !apperrors.IsContextError(err) {
			err = apperrors.CalculationError{Backend: ev.Name(), Cause: err}
		}
	}
	return EvaluationResult{Name: ev.Name(), Outcome: out, Duration: d, Err: err}
}

// AnalyzeResults sorts results with successes first by duration, prints the
// comparison table and checks that every successful backend agrees.
//
// Parameters:
//   - results: The evaluation results to analyze. They are sorted in place.
//   - req: The request that produced them.
//   - presenter: The presenter for the table, status and result.
//   - out: The io.Writer for the report.
//   - rec: The metrics recorder, or nil.
//
// Returns:
//   - int: ExitSuccess when at least one backend succeeded and all successful
//     backends agree, ExitErrorMismatch on disagreement, otherwise the exit
//     code of the first error.
func AnalyzeResults(results []EvaluationResult, req Request, presenter ResultPresenter, out io.Writer, rec *metrics.Recorder) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *EvaluationResult
	var firstErr error
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}

	if firstValid == nil {
		if firstErr == nil {
			firstErr = errors.New("no backend selected")
		}
		if len(results) > 1 {
			presenter.PresentStatus("failure. No backend completed the operation.", out)
		}
		return presenter.HandleError(firstErr, 0, out)
	}

	var disagree []string
	for _, res := range results {
		if res.Err == nil && !res.Outcome.Equal(firstValid.Outcome) {
			disagree = append(disagree, res.Name)
		}
	}
	if len(disagree) > 0 {
		rec.ObserveMismatch()
		err := apperrors.MismatchError{Backends: append([]string{firstValid.Name}, disagree...)}
		presenter.PresentStatus(fmt.Sprintf("CRITICAL. %v", err), out)
		return apperrors.ExitErrorMismatch
	}

	if len(results) > 1 {
		presenter.PresentStatus("success. All backends agree.", out)
	}
	presenter.PresentResult(*firstValid, req, out)
	return apperrors.ExitSuccess
}
