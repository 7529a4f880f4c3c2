package kernel

import "math/bits"

// CountZeros counts consecutive zero words of x starting at index from and
// moving toward index to, which is excluded. The scan runs downward when to
// is below from. Bounds outside x are clamped to it.
func CountZeros[T Word](x []T, from, to int) int {
	n := 0
	if to < from {
		if from > len(x)-1 {
			from = len(x) - 1
		}
		if to < -1 {
			to = -1
		}
		for i := from; i > to; i-- {
			if x[i] != 0 {
				break
			}
			n++
		}
		return n
	}
	if from < 0 {
		from = 0
	}
	if to > len(x) {
		to = len(x)
	}
	for i := from; i < to; i++ {
		if x[i] != 0 {
			break
		}
		n++
	}
	return n
}

// ShiftSig shifts x by amount whole words toward its most significant end,
// multiplying it by base^amount modulo the window. Vacated words are zeroed.
func ShiftSig[T Word](x []T, amount int) {
	if amount <= 0 {
		return
	}
	if amount >= len(x) {
		clear(x)
		return
	}
	copy(x[amount:], x[:len(x)-amount])
	clear(x[:amount])
}

// ShiftInsig shifts x by amount whole words toward its least significant end,
// dividing it by base^amount. Vacated words are zeroed.
func ShiftInsig[T Word](x []T, amount int) {
	if amount <= 0 {
		return
	}
	if amount >= len(x) {
		clear(x)
		return
	}
	copy(x, x[amount:])
	clear(x[len(x)-amount:])
}

// ShiftSigB shifts x left by amount bits. Bits pushed past the most
// significant word are lost.
func ShiftSigB[T Word](x []T, amount uint) {
	if amount == 0 || len(x) == 0 {
		return
	}
	w := WordBits[T]()
	if amount >= uint(len(x))*w {
		clear(x)
		return
	}
	ShiftSig(x, int(amount/w))
	s := amount % w
	if s == 0 {
		return
	}
	var carry T
	for i := range x {
		next := x[i] >> (w - s)
		x[i] = x[i]<<s | carry
		carry = next
	}
}

// ShiftInsigB shifts x right by amount bits. Bits pushed below the least
// significant word are lost.
func ShiftInsigB[T Word](x []T, amount uint) {
	if amount == 0 || len(x) == 0 {
		return
	}
	w := WordBits[T]()
	if amount >= uint(len(x))*w {
		clear(x)
		return
	}
	ShiftInsig(x, int(amount/w))
	s := amount % w
	if s == 0 {
		return
	}
	var carry T
	for i := len(x) - 1; i >= 0; i-- {
		next := x[i] << (w - s)
		x[i] = x[i]>>s | carry
		carry = next
	}
}

// MSBNumber returns n such that bit n-1 is the highest set bit of x, or 0
// when x is zero.
func MSBNumber[T Word](x []T) int {
	w := int(WordBits[T]())
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*w + bits.Len64(uint64(x[i]))
		}
	}
	return 0
}
