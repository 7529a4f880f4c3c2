package orchestration

import (
	"context"
	"fmt"
	"math/big"

	"github.com/agbru/ultranum/internal/kernel"
)

// ReferenceEvaluator computes every request directly with math/big.
type ReferenceEvaluator struct{}

// Name returns "reference".
func (ReferenceEvaluator) Name() string { return "reference" }

// Evaluate computes req with math/big and reduces the result to the window.
func (ReferenceEvaluator) Evaluate(ctx context.Context, req Request) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}
	m := req.Modulus()
	a, b := req.Reduced()
	z := new(big.Int)
	switch req.Op {
	case OpAdd:
		z.Add(a, b)
	case OpSub:
		z.Sub(a, b)
	case OpMul:
		z.Mul(a, b)
	case OpDiv:
		if b.Sign() == 0 {
			return Outcome{}, &kernel.InvalidArgumentError{Op: "reference.div", Reason: "divisor is zero", Err: kernel.ErrDivisionByZero}
		}
		q, r := z.QuoRem(a, b, new(big.Int))
		return Outcome{Value: q, Remainder: r}, nil
	case OpCmp:
		return Outcome{Cmp: a.Cmp(b)}, nil
	case OpLsh:
		z.Lsh(a, req.Shift)
	case OpRsh:
		z.Rsh(a, req.Shift)
	case OpNeg:
		z.Neg(a)
	default:
		return Outcome{}, fmt.Errorf("unknown operation %q", req.Op)
	}
	return Outcome{Value: z.Mod(z, m)}, nil
}
