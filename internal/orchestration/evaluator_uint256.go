package orchestration

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/agbru/ultranum/internal/kernel"
)

// Uint256Evaluator evaluates 256-bit windows with holiman/uint256. Any
// width and word count whose product is 256 is accepted.
type Uint256Evaluator struct{}

// Name returns "uint256".
func (Uint256Evaluator) Name() string { return "uint256" }

// Supports reports whether req uses a 256-bit window.
func (Uint256Evaluator) Supports(req Request) bool { return req.WindowBits() == 256 }

// Evaluate computes req with uint256.Int.
func (e Uint256Evaluator) Evaluate(ctx context.Context, req Request) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}
	if !e.Supports(req) {
		return Outcome{}, fmt.Errorf("%w: %d-bit window, want 256", ErrUnsupportedWindow, req.WindowBits())
	}
	ra, rb := req.Reduced()
	x, _ := uint256.FromBig(ra)
	y, _ := uint256.FromBig(rb)
	z := new(uint256.Int)
	switch req.Op {
	case OpAdd:
		z.Add(x, y)
	case OpSub:
		z.Sub(x, y)
	case OpMul:
		z.Mul(x, y)
	case OpDiv:
		if y.IsZero() {
			return Outcome{}, &kernel.InvalidArgumentError{Op: "uint256.div", Reason: "divisor is zero", Err: kernel.ErrDivisionByZero}
		}
		r := new(uint256.Int).Mod(x, y)
		return Outcome{Value: z.Div(x, y).ToBig(), Remainder: r.ToBig()}, nil
	case OpCmp:
		return Outcome{Cmp: x.Cmp(y)}, nil
	case OpLsh:
		z.Lsh(x, req.Shift)
	case OpRsh:
		z.Rsh(x, req.Shift)
	case OpNeg:
		z.Neg(x)
	default:
		return Outcome{}, fmt.Errorf("unknown operation %q", req.Op)
	}
	return Outcome{Value: z.ToBig()}, nil
}
