// Package rational implements fractions of two fixed-width signed integers.
//
// A Rat carries no precision of its own: numerator and denominator are plain
// T values and every operation multiplies them directly, so results overflow
// exactly as T arithmetic does. Enable AutoSimplify to reduce by the GCD
// after each operation and keep the terms small.
package rational

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/agbru/ultranum/internal/kernel"
)

// ErrZeroDenominator is returned when a Rat would end up with a zero
// denominator.
var ErrZeroDenominator = errors.New("rational: zero denominator")

// Options is a set of Rat behaviour flags.
type Options uint8

const (
	// AutoSimplify reduces the result of every arithmetic operation.
	AutoSimplify Options = 1 << iota
)

// Rat is the fraction Num/Den. The zero value is not valid; build one with
// New or FromInt.
type Rat[T constraints.Signed] struct {
	num, den T
	opts     Options
}

// New returns n/d.
func New[T constraints.Signed](n, d T, opts ...Options) (Rat[T], error) {
	if d == 0 {
		return Rat[T]{}, ErrZeroDenominator
	}
	r := Rat[T]{num: n, den: d}
	for _, o := range opts {
		kernel.SetFlag(&r.opts, o, true)
	}
	if r.AutoSimplify() {
		r = r.Simplify()
	}
	return r, nil
}

// FromInt returns n/1.
func FromInt[T constraints.Signed](n T, opts ...Options) Rat[T] {
	r, _ := New(n, 1, opts...)
	return r
}

// FromFloat approximates x with a denominator of 10^places. The scaled
// fraction is rounded to the nearest integer.
func FromFloat[T constraints.Signed](x float64, places uint, opts ...Options) (Rat[T], error) {
	scale := math.Pow10(int(places))
	limit := float64(maxOf[T]())
	if scale > limit || math.IsNaN(x) || math.Abs(x)*scale > limit {
		return Rat[T]{}, fmt.Errorf("rational: %g with %d places does not fit in %d bits", x, places, unsafe.Sizeof(T(0))*8)
	}
	whole, frac := math.Modf(x)
	return New(T(math.Round(frac*scale))+T(scale)*T(whole), T(scale), opts...)
}

func maxOf[T constraints.Signed]() T {
	return T(uint64(1)<<(unsafe.Sizeof(T(0))*8-1) - 1)
}

// Num returns the numerator.
func (r Rat[T]) Num() T { return r.num }

// Den returns the denominator.
func (r Rat[T]) Den() T { return r.den }

// AutoSimplify reports whether r reduces itself after each operation.
func (r Rat[T]) AutoSimplify() bool { return kernel.ReadFlag(r.opts, AutoSimplify) }

// WithAutoSimplify returns r with the AutoSimplify option set to on.
func (r Rat[T]) WithAutoSimplify(on bool) Rat[T] {
	kernel.SetFlag(&r.opts, AutoSimplify, on)
	return r
}

// Simplify divides both terms by their GCD and moves the sign to the
// numerator.
func (r Rat[T]) Simplify() Rat[T] {
	if r.den < 0 {
		r.num, r.den = -r.num, -r.den
	}
	if g := kernel.GCD(r.num, r.den); g > 1 {
		r.num /= g
		r.den /= g
	}
	return r
}

func (r Rat[T]) settle() Rat[T] {
	if r.AutoSimplify() {
		return r.Simplify()
	}
	return r
}

// Add returns r + o. Options come from r.
func (r Rat[T]) Add(o Rat[T]) Rat[T] {
	r.num = r.num*o.den + o.num*r.den
	r.den *= o.den
	return r.settle()
}

// Sub returns r - o.
func (r Rat[T]) Sub(o Rat[T]) Rat[T] { return r.Add(o.Neg()) }

// Mul returns r * o.
func (r Rat[T]) Mul(o Rat[T]) Rat[T] {
	r.num *= o.num
	r.den *= o.den
	return r.settle()
}

// Quo returns r / o. It fails when o is zero.
func (r Rat[T]) Quo(o Rat[T]) (Rat[T], error) {
	inv, err := o.Inverse()
	if err != nil {
		return Rat[T]{}, err
	}
	return r.Mul(inv), nil
}

// Inverse returns den/num.
func (r Rat[T]) Inverse() (Rat[T], error) {
	if r.num == 0 {
		return Rat[T]{}, ErrZeroDenominator
	}
	r.num, r.den = r.den, r.num
	return r, nil
}

// Neg returns -r.
func (r Rat[T]) Neg() Rat[T] {
	r.num = -r.num
	return r
}

// Inc returns r with one added to its numerator.
func (r Rat[T]) Inc() Rat[T] {
	r.num++
	return r
}

// Dec returns r with one subtracted from its numerator.
func (r Rat[T]) Dec() Rat[T] {
	r.num--
	return r
}

// ScaleUp multiplies both terms by v, leaving the value unchanged.
func (r Rat[T]) ScaleUp(v T) Rat[T] {
	r.num *= v
	r.den *= v
	return r
}

// ScaleDown divides both terms by v. It reports false and returns r
// unchanged when v does not divide both.
func (r Rat[T]) ScaleDown(v T) (Rat[T], bool) {
	if v == 0 || r.num%v != 0 || r.den%v != 0 {
		return r, false
	}
	r.num /= v
	r.den /= v
	return r, true
}

// Cmp returns -1, 0 or +1 as r is less than, equal to or greater than o.
func (r Rat[T]) Cmp(o Rat[T]) int {
	l, rr := r.num*o.den, o.num*r.den
	c := 0
	switch {
	case l < rr:
		c = -1
	case l > rr:
		c = 1
	}
	if (r.den < 0) != (o.den < 0) {
		c = -c
	}
	return c
}

// Float64 returns the nearest float64 to r.
func (r Rat[T]) Float64() float64 { return float64(r.num) / float64(r.den) }

// String returns r as "num/den".
func (r Rat[T]) String() string { return fmt.Sprintf("%d/%d", r.num, r.den) }
