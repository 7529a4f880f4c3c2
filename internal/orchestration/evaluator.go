//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks

package orchestration

import (
	"context"
	"errors"
	"fmt"

	"github.com/agbru/ultranum/internal/bignum"
	"github.com/agbru/ultranum/internal/kernel"
)

// ErrUnsupportedWindow is returned by evaluators that only handle some
// window shapes.
var ErrUnsupportedWindow = errors.New("window not supported by this backend")

// Evaluator computes the Outcome of a Request.
type Evaluator interface {
	// Name identifies the backend in reports and on the command line.
	Name() string
	// Evaluate runs the request. It returns ctx.Err() if ctx is already
	// done; a single operation is not interrupted once started.
	Evaluate(ctx context.Context, req Request) (Outcome, error)
}

// WindowLimiter is implemented by evaluators that only accept some
// requests. Registry.Select skips them for requests they do not support.
type WindowLimiter interface {
	Supports(req Request) bool
}

// NumberEvaluator evaluates requests with bignum.Number at the requested
// word width.
type NumberEvaluator struct {
	name      string
	reference bool
}

// NewKernelEvaluator returns the evaluator backed by the word kernel.
func NewKernelEvaluator() *NumberEvaluator {
	return &NumberEvaluator{name: "kernel"}
}

// NewWordReferenceEvaluator returns an evaluator that runs the same Number
// wrapper with bignum.ReferenceOps, isolating wrapper bugs from kernel bugs.
func NewWordReferenceEvaluator() *NumberEvaluator {
	return &NumberEvaluator{name: "wordref", reference: true}
}

// Name returns the registry name of e.
func (e *NumberEvaluator) Name() string { return e.name }

// Evaluate computes req on a Number of the requested word type.
func (e *NumberEvaluator) Evaluate(ctx context.Context, req Request) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}
	switch req.Width {
	case 8:
		return evaluateNumber[uint8](req, e.reference)
	case 16:
		return evaluateNumber[uint16](req, e.reference)
	case 32:
		return evaluateNumber[uint32](req, e.reference)
	default:
		return evaluateNumber[uint64](req, e.reference)
	}
}

func evaluateNumber[T kernel.Word](req Request, reference bool) (Outcome, error) {
	var opts []bignum.Option[T]
	if reference {
		opts = append(opts, bignum.WithOps[T](bignum.ReferenceOps[T]{}))
	}
	a, err := bignum.FromBig(req.A, req.Words, opts...)
	if err != nil {
		return Outcome{}, err
	}
	b, err := bignum.FromBig(req.B, req.Words, opts...)
	if err != nil {
		return Outcome{}, err
	}

	switch req.Op {
	case OpAdd:
		a.Add(b)
	case OpSub:
		a.Sub(b)
	case OpMul:
		if err := a.Mul(b); err != nil {
			return Outcome{}, err
		}
	case OpDiv:
		rem, err := a.QuoRem(b)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Value: a.Big(), Remainder: rem.Big()}, nil
	case OpCmp:
		return Outcome{Cmp: a.Cmp(b)}, nil
	case OpLsh:
		a.Lsh(req.Shift)
	case OpRsh:
		a.Rsh(req.Shift)
	case OpNeg:
		a.Neg()
	default:
		return Outcome{}, fmt.Errorf("unknown operation %q", req.Op)
	}
	return Outcome{Value: a.Big()}, nil
}
