package kernel

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MaxWords is the largest word count a fixed window may have. It matches the
// largest scratch size class, so every window fits a pooled buffer.
const MaxWords = 1 << 18

// Word is the digit type of a multi-precision value.
type Word interface {
	constraints.Unsigned
}

// WordBits returns the number of bits in one T.
func WordBits[T Word]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// halfBits returns the width of a half digit of T.
func halfBits[T Word]() uint {
	return WordBits[T]() / 2
}

// TwoComp returns the two's complement of n.
func TwoComp[T Word](n T) T {
	return ^n + 1
}

// TwoCompInPlace replaces *n with its two's complement.
func TwoCompInPlace[T Word](n *T) {
	*n = ^*n + 1
}

// SetFlag turns flag on or off in *data.
func SetFlag[T Word](data *T, flag T, set bool) {
	if set {
		*data |= flag
	} else {
		*data &^= flag
	}
}

// ReadFlag reports whether any bit of flag is set in data.
func ReadFlag[T Word](data, flag T) bool {
	return data&flag != 0
}

// AnyFlagsOn reports whether at least one of the flags is set in data.
func AnyFlagsOn[T Word](data T, flags ...T) bool {
	for _, f := range flags {
		if data&f != 0 {
			return true
		}
	}
	return false
}

// AllFlagsOn reports whether every one of the flags has at least one bit set
// in data. It returns false when no flags are given.
func AllFlagsOn[T Word](data T, flags ...T) bool {
	if len(flags) == 0 {
		return false
	}
	for _, f := range flags {
		if data&f == 0 {
			return false
		}
	}
	return true
}

// CheckBit reports whether bit number bit (0 = least significant) is set in v.
func CheckBit[T Word](v T, bit int) (bool, error) {
	if bit < 0 || bit >= int(WordBits[T]()) {
		return false, &InvalidArgumentError{Op: "CheckBit", Reason: "bit number out of range"}
	}
	return (v>>uint(bit))&1 == 1, nil
}

// GCD returns the greatest common divisor of |a| and |b| using Euclid's
// algorithm. GCD(0, x) is |x|.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCMPair holds the cofactors that bring two numbers to their least common
// multiple: First*a == Second*b == lcm(a, b).
type LCMPair[T constraints.Integer] struct {
	First  T
	Second T
}

// LCM returns the cofactor pair for a and b. Both must be non-zero.
func LCM[T constraints.Integer](a, b T) (LCMPair[T], error) {
	if a == 0 || b == 0 {
		return LCMPair[T]{}, &InvalidArgumentError{Op: "LCM", Reason: "operand is zero"}
	}
	g := GCD(a, b)
	return LCMPair[T]{First: b / g, Second: a / g}, nil
}
