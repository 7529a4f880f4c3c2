//go:build gmp

package orchestration

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ncw/gmp"

	"github.com/agbru/ultranum/internal/kernel"
)

func init() {
	extraEvaluators = append(extraEvaluators, GMPEvaluator{})
}

// GMPEvaluator computes requests with the GNU Multiple Precision library.
// It is only built with the gmp build tag since it needs cgo and libgmp.
type GMPEvaluator struct{}

// Name returns "gmp".
func (GMPEvaluator) Name() string { return "gmp" }

func toGMP(v *big.Int) *gmp.Int {
	z, _ := new(gmp.Int).SetString(v.String(), 10)
	return z
}

func fromGMP(z *gmp.Int) *big.Int {
	v, _ := new(big.Int).SetString(z.String(), 10)
	return v
}

// Evaluate computes req with GMP integers.
func (GMPEvaluator) Evaluate(ctx context.Context, req Request) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}
	m := toGMP(req.Modulus())
	ra, rb := req.Reduced()
	a, b := toGMP(ra), toGMP(rb)
	z := new(gmp.Int)
	switch req.Op {
	case OpAdd:
		z.Add(a, b)
	case OpSub:
		z.Sub(a, b)
	case OpMul:
		z.Mul(a, b)
	case OpDiv:
		if b.Sign() == 0 {
			return Outcome{}, &kernel.InvalidArgumentError{Op: "gmp.div", Reason: "divisor is zero", Err: kernel.ErrDivisionByZero}
		}
		q, r := z.QuoRem(a, b, new(gmp.Int))
		return Outcome{Value: fromGMP(q), Remainder: fromGMP(r)}, nil
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
	return Outcome{Value: fromGMP(z.Mod(z, m))}, nil
}
