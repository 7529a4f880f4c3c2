package orchestration

import (
	"fmt"
	"math/big"
	"slices"

	apperrors "github.com/agbru/ultranum/internal/errors"
	"github.com/agbru/ultranum/internal/kernel"
)

// Operation names.
const (
	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
	OpDiv = "div"
	OpCmp = "cmp"
	OpLsh = "lsh"
	OpRsh = "rsh"
	OpNeg = "neg"
)

var operations = []string{OpAdd, OpSub, OpMul, OpDiv, OpCmp, OpLsh, OpRsh, OpNeg}

// Request describes one operation on a fixed window of Words words of Width
// bits. Operands outside the window are reduced modulo 2^WindowBits, so
// negative operands stand for their two's complement.
type Request struct {
	Op    string
	A, B  *big.Int
	Shift uint
	Width int
	Words int
}

// NewRequest parses the operands with base prefixes (0x, 0o, 0b) and
// validates the request.
func NewRequest(op, a, b string, shift uint, width, words int) (Request, error) {
	x, ok := new(big.Int).SetString(a, 0)
	if !ok {
		return Request{}, apperrors.ValidationError{Field: "a", Message: fmt.Sprintf("%q is not an integer", a)}
	}
	y, ok := new(big.Int).SetString(b, 0)
	if !ok {
		return Request{}, apperrors.ValidationError{Field: "b", Message: fmt.Sprintf("%q is not an integer", b)}
	}
	req := Request{Op: op, A: x, B: y, Shift: shift, Width: width, Words: words}
	return req, req.Validate()
}

// Validate checks the operation name and the window shape.
func (r Request) Validate() error {
	switch {
	case !slices.Contains(operations, r.Op):
		return apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", r.Op)}
	case r.Width != 8 && r.Width != 16 && r.Width != 32 && r.Width != 64:
		return apperrors.ValidationError{Field: "width", Message: fmt.Sprintf("unsupported word width %d", r.Width)}
	case r.Words < 1:
		return apperrors.ValidationError{Field: "words", Message: "must be positive"}
	case r.Words > kernel.MaxWords:
		return apperrors.ValidationError{Field: "words", Message: fmt.Sprintf("%d exceeds the limit of %d", r.Words, kernel.MaxWords)}
	case r.A == nil || r.B == nil:
		return apperrors.ValidationError{Field: "operands", Message: "missing operand"}
	}
	return nil
}

// WindowBits returns the size of the fixed window in bits.
func (r Request) WindowBits() int { return r.Width * r.Words }

// Modulus returns 2^WindowBits.
func (r Request) Modulus() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(r.WindowBits()))
}

// Reduced returns the operands reduced into [0, 2^WindowBits).
func (r Request) Reduced() (a, b *big.Int) {
	m := r.Modulus()
	return new(big.Int).Mod(r.A, m), new(big.Int).Mod(r.B, m)
}

// String returns a one-line description of r for logs.
func (r Request) String() string {
	return fmt.Sprintf("%s(%v, %v) shift=%d window=%dx%d", r.Op, r.A, r.B, r.Shift, r.Words, r.Width)
}

// Outcome is what an evaluator returns. Value is nil for cmp, and
// Remainder is non-nil only for div.
type Outcome struct {
	Value     *big.Int
	Remainder *big.Int
	Cmp       int
}

// Equal reports whether o and p hold the same results.
func (o Outcome) Equal(p Outcome) bool {
	return equalBig(o.Value, p.Value) && equalBig(o.Remainder, p.Remainder) && o.Cmp == p.Cmp
}

func equalBig(x, y *big.Int) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return x.Cmp(y) == 0
}
