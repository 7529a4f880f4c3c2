package bignum

import (
	"fmt"
	"math/big"

	"github.com/agbru/ultranum/internal/kernel"
)

// Number is an unsigned integer held in a fixed number of words. Every
// arithmetic method stores its result in the receiver modulo 2^(W*Len());
// an operand with a different word count is truncated or zero-extended to
// the receiver's width.
//
// A Number is not safe for concurrent use.
type Number[T kernel.Word] struct {
	buf *Buffer[T]
	ops Ops[T]
}

// Option configures a Number at construction.
type Option[T kernel.Word] func(*Number[T])

// WithOps selects the backend a Number delegates to. A nil backend is
// ignored.
func WithOps[T kernel.Word](ops Ops[T]) Option[T] {
	return func(n *Number[T]) {
		if ops != nil {
			n.ops = ops
		}
	}
}

// New returns a zero Number of the given word count.
func New[T kernel.Word](words int, opts ...Option[T]) (*Number[T], error) {
	if words < 1 {
		return nil, &kernel.InvalidArgumentError{Op: "bignum.New", Reason: "word count must be positive"}
	}
	if words > kernel.MaxWords {
		return nil, &kernel.InvalidArgumentError{Op: "bignum.New", Reason: fmt.Sprintf("word count %d exceeds %d", words, kernel.MaxWords)}
	}
	n := &Number[T]{buf: NewBuffer[T](words), ops: KernelOps[T]{}}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// FromUint64 returns a Number of the given word count holding v, truncated
// to the window.
func FromUint64[T kernel.Word](v uint64, words int, opts ...Option[T]) (*Number[T], error) {
	n, err := New(words, opts...)
	if err != nil {
		return nil, err
	}
	n.SetUint64(v)
	return n, nil
}

// FromWords returns a Number holding a copy of words, least significant
// first.
func FromWords[T kernel.Word](words []T, opts ...Option[T]) (*Number[T], error) {
	n, err := New(len(words), opts...)
	if err != nil {
		return nil, err
	}
	copy(n.buf.Words(), words)
	return n, nil
}

// FromBig returns a Number of the given word count holding v modulo the
// window. Negative values are stored in two's complement.
func FromBig[T kernel.Word](v *big.Int, words int, opts ...Option[T]) (*Number[T], error) {
	n, err := New(words, opts...)
	if err != nil {
		return nil, err
	}
	storeBig(n.buf.Words(), v)
	return n, nil
}

// Backend returns the name of the backend n delegates to.
func (n *Number[T]) Backend() string { return n.ops.Name() }

// Len returns the word count of n.
func (n *Number[T]) Len() int { return n.buf.Len() }

// Words returns the live words of n, least significant first. Writes through
// the returned slice change n.
func (n *Number[T]) Words() []T { return n.buf.Words() }

// Clone returns a copy of n using the same backend.
func (n *Number[T]) Clone() *Number[T] {
	return &Number[T]{buf: n.buf.Clone(), ops: n.ops}
}

// Swap exchanges the contents of n and m, word counts included.
func (n *Number[T]) Swap(m *Number[T]) {
	n.buf, m.buf = m.buf, n.buf
}

// Set copies the value of m into n, truncated to n's width.
func (n *Number[T]) Set(m *Number[T]) *Number[T] {
	if n == m {
		return n
	}
	w := n.buf.Words()
	clear(w)
	copy(w, m.buf.Words())
	return n
}

// SetUint64 stores v in n, truncated to n's width.
func (n *Number[T]) SetUint64(v uint64) *Number[T] {
	w := n.buf.Words()
	clear(w)
	bitsPer := kernel.WordBits[T]()
	for i := range w {
		if v == 0 {
			break
		}
		w[i] = T(v)
		v >>= bitsPer
	}
	return n
}

// operand returns the words of m for use against n. When m is n the words
// are copied so that the backend never sees overlapping spans.
func (n *Number[T]) operand(m *Number[T]) []T {
	if n == m {
		return n.buf.Clone().Words()
	}
	return m.buf.Words()
}

// Add sets n to n + m.
func (n *Number[T]) Add(m *Number[T]) *Number[T] {
	n.ops.Add(n.buf.Words(), n.operand(m))
	return n
}

// Sub sets n to n - m.
func (n *Number[T]) Sub(m *Number[T]) *Number[T] {
	n.ops.Sub(n.buf.Words(), n.operand(m))
	return n
}

// Mul sets n to n * m. The buffer is extended by m's word count for the
// duration of the product so the backend computes it in full, then cut
// back to n's width.
func (n *Number[T]) Mul(m *Number[T]) (err error) {
	src := n.operand(m)
	extra := len(src)
	n.buf.Grow(extra)
	defer func() {
		if shrinkErr := n.buf.Shrink(extra); err == nil {
			err = shrinkErr
		}
	}()
	return n.ops.Mul(n.buf.Words(), src)
}

// QuoRem sets n to n / m and returns n mod m as a Number of n's width.
// n is left unchanged when m is zero.
func (n *Number[T]) QuoRem(m *Number[T]) (*Number[T], error) {
	rem := &Number[T]{buf: NewBuffer[T](n.Len()), ops: n.ops}
	if err := n.ops.QuoRem(n.buf.Words(), n.operand(m), rem.buf.Words()); err != nil {
		return nil, err
	}
	return rem, nil
}

// Quo sets n to n / m, discarding the remainder.
func (n *Number[T]) Quo(m *Number[T]) error {
	return n.ops.QuoRem(n.buf.Words(), n.operand(m), nil)
}

// Rem sets n to n mod m.
func (n *Number[T]) Rem(m *Number[T]) error {
	rem, err := n.QuoRem(m)
	if err != nil {
		return err
	}
	n.Swap(rem)
	return nil
}

// Cmp compares the values of n and m and returns -1, 0 or +1. Word counts
// do not matter.
func (n *Number[T]) Cmp(m *Number[T]) int {
	return n.ops.Compare(n.buf.Words(), m.buf.Words())
}

// Lsh shifts n up by s bits.
func (n *Number[T]) Lsh(s uint) *Number[T] {
	n.ops.ShiftUp(n.buf.Words(), s)
	return n
}

// Rsh shifts n down by s bits.
func (n *Number[T]) Rsh(s uint) *Number[T] {
	n.ops.ShiftDown(n.buf.Words(), s)
	return n
}

// Not complements every bit of n.
func (n *Number[T]) Not() *Number[T] {
	w := n.buf.Words()
	for i := range w {
		w[i] = ^w[i]
	}
	return n
}

// Neg sets n to its two's complement, 2^(W*Len()) - n.
func (n *Number[T]) Neg() *Number[T] {
	n.Not()
	n.ops.Add(n.buf.Words(), []T{1})
	return n
}

// IsZero reports whether every word of n is zero.
func (n *Number[T]) IsZero() bool { return kernel.IsZero(n.buf.Words()) }

// IsOne reports whether n equals one.
func (n *Number[T]) IsOne() bool { return kernel.IsOne(n.buf.Words()) }

// BitLen returns the number of significant bits of n.
func (n *Number[T]) BitLen() int { return kernel.MSBNumber(n.buf.Words()) }

// RealSize returns the number of significant words of n.
func (n *Number[T]) RealSize() int { return kernel.RealSize(n.buf.Words()) }

// MSDZeros returns the number of most significant zero words of n.
func (n *Number[T]) MSDZeros() int { return kernel.MSDZeros(n.buf.Words()) }

// Uint64 returns the value of n and whether it fits in 64 bits.
func (n *Number[T]) Uint64() (uint64, bool) {
	if n.BitLen() > 64 {
		return 0, false
	}
	var v uint64
	bitsPer := kernel.WordBits[T]()
	w := kernel.Trim(n.buf.Words())
	for i := len(w) - 1; i >= 0; i-- {
		v = v<<bitsPer | uint64(w[i])
	}
	return v, true
}

// Big returns the unsigned value of n.
func (n *Number[T]) Big() *big.Int { return BigFromWords(n.buf.Words()) }

// Signed returns the value of n read as a two's complement integer of
// W*Len() bits.
func (n *Number[T]) Signed() *big.Int {
	v := n.Big()
	if n.BitLen() == int(kernel.WordBits[T]())*n.Len() {
		v.Sub(v, windowOf[T](n.Len()))
	}
	return v
}

// Text returns the unsigned value of n in the given base, 2 to 62.
func (n *Number[T]) Text(base int) string { return n.Big().Text(base) }

// String returns the decimal value of n.
func (n *Number[T]) String() string { return n.Text(10) }
