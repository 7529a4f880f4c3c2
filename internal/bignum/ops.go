package bignum

import (
	"math/big"

	"github.com/agbru/ultranum/internal/kernel"
)

// Ops is the set of word-level operations a Number delegates to. Every
// method works in place on spans owned by the caller and must not keep them.
//
// Compare orders values by magnitude, ignoring zero padding. Mul truncates
// to len(dst); Number pre-extends dst when it wants the full product.
type Ops[T kernel.Word] interface {
	Name() string
	Compare(a, b []T) int
	Add(dst, src []T)
	Sub(dst, src []T)
	Mul(dst, src []T) error
	QuoRem(dividend, divisor, remainder []T) error
	ShiftUp(x []T, bits uint)
	ShiftDown(x []T, bits uint)
}

// KernelOps runs the word-level kernel.
type KernelOps[T kernel.Word] struct{}

var _ Ops[uint16] = KernelOps[uint16]{}

// Name returns "kernel".
func (KernelOps[T]) Name() string { return "kernel" }

// Compare returns the sign of a - b.
func (KernelOps[T]) Compare(a, b []T) int { return kernel.CompareMagnitude(a, b) }

// Add adds src into dst modulo the window of dst.
func (KernelOps[T]) Add(dst, src []T) { kernel.AddArray(dst, src) }

// Sub subtracts src from dst modulo the window of dst.
func (KernelOps[T]) Sub(dst, src []T) { kernel.SubArray(dst, src) }

// Mul multiplies dst by src, truncated to len(dst) words.
func (KernelOps[T]) Mul(dst, src []T) error { return kernel.MulArray(dst, src) }

// QuoRem runs DivArrayShift.
func (KernelOps[T]) QuoRem(dividend, divisor, remainder []T) error {
	return kernel.DivArrayShift(dividend, divisor, remainder)
}

// ShiftUp shifts x left by bits.
func (KernelOps[T]) ShiftUp(x []T, bits uint) { kernel.ShiftSigB(x, bits) }

// ShiftDown shifts x right by bits.
func (KernelOps[T]) ShiftDown(x []T, bits uint) { kernel.ShiftInsigB(x, bits) }

// ReferenceOps computes every operation with math/big. It is slow and
// allocates; it exists to check KernelOps against an independent
// implementation.
type ReferenceOps[T kernel.Word] struct{}

var _ Ops[uint16] = ReferenceOps[uint16]{}

// Name returns "reference".
func (ReferenceOps[T]) Name() string { return "reference" }

// Compare returns the sign of a - b.
func (ReferenceOps[T]) Compare(a, b []T) int {
	return BigFromWords(a).Cmp(BigFromWords(b))
}

// Add adds src into dst modulo the window of dst.
func (ReferenceOps[T]) Add(dst, src []T) {
	storeBig(dst, new(big.Int).Add(BigFromWords(dst), BigFromWords(src)))
}

// Sub subtracts src from dst modulo the window of dst.
func (ReferenceOps[T]) Sub(dst, src []T) {
	storeBig(dst, new(big.Int).Sub(BigFromWords(dst), BigFromWords(src)))
}

// Mul multiplies dst by src, truncated to len(dst) words.
func (ReferenceOps[T]) Mul(dst, src []T) error {
	storeBig(dst, new(big.Int).Mul(BigFromWords(dst), BigFromWords(src)))
	return nil
}

// QuoRem divides dividend by divisor with the same argument checks as
// DivArrayShift.
func (ReferenceOps[T]) QuoRem(dividend, divisor, remainder []T) error {
	const op = "ReferenceOps.QuoRem"
	d := BigFromWords(divisor)
	if d.Sign() == 0 {
		return &kernel.InvalidArgumentError{Op: op, Reason: "divisor is zero", Err: kernel.ErrDivisionByZero}
	}
	if remainder != nil {
		if need := min(kernel.RealSize(dividend), kernel.RealSize(divisor)); len(remainder) < need {
			return &kernel.InvalidArgumentError{Op: op, Reason: "remainder cannot hold the result", Err: kernel.ErrRemainderTooShort}
		}
	}
	q, r := new(big.Int).QuoRem(BigFromWords(dividend), d, new(big.Int))
	storeBig(dividend, q)
	if remainder != nil {
		storeBig(remainder, r)
	}
	return nil
}

// ShiftUp shifts x left by bits, dropping bits past the window.
func (ReferenceOps[T]) ShiftUp(x []T, bits uint) {
	storeBig(x, new(big.Int).Lsh(BigFromWords(x), bits))
}

// ShiftDown shifts x right by bits.
func (ReferenceOps[T]) ShiftDown(x []T, bits uint) {
	storeBig(x, new(big.Int).Rsh(BigFromWords(x), bits))
}
