package kernel

// MaximumShift returns the number of bits a must be shifted toward its most
// significant end so that its highest set bit sits exactly one position below
// the highest set bit of b. It is 0 when a is already at or above that
// position, or when either value is zero.
func MaximumShift[T Word](a, b []T) int {
	ma, mb := MSBNumber(a), MSBNumber(b)
	if ma == 0 || mb == 0 || ma+1 >= mb {
		return 0
	}
	return mb - ma - 1
}

// MaximumShiftMSB applies MaximumShift(a, b) to a and returns the shift. The
// shift is capped so that no set bit of a leaves its window.
func MaximumShiftMSB[T Word](a, b []T) int {
	s := MaximumShift(a, b)
	if room := len(a)*int(WordBits[T]()) - MSBNumber(a); s > room {
		s = room
	}
	ShiftSigB(a, uint(s))
	return s
}

// DivArrayShift divides dividend by divisor, storing the quotient in dividend
// and, when remainder is non-nil, the remainder in remainder.
//
// The divisor is copied into scratch storage and aligned just under the
// dividend's most significant bit. It is then subtracted from the running
// remainder as long as it fits, adding one to a quotient accumulator each
// time, and shifted down one bit (the accumulator up one bit) when it no
// longer fits. The loop ends once the shift budget is spent, or early when
// the remainder reaches zero.
//
// Arguments are validated before anything is written: a zero divisor fails
// with ErrDivisionByZero, a remainder shorter than the significant words it
// may need fails with ErrRemainderTooShort, and overlapping spans fail with
// ErrAliasedOperands. A nil remainder is never touched.
//
// Parameters:
//   - dividend: The value to divide. It receives the quotient.
//   - divisor: The value to divide by. It is not modified.
//   - remainder: Receives the remainder, or nil when it is not needed.
//
// Returns:
//   - error: An *InvalidArgumentError wrapping one of the sentinels above,
//     or nil.
func DivArrayShift[T Word](dividend, divisor, remainder []T) error {
	const op = "DivArrayShift"
	if IsZero(divisor) {
		return invalid(op, "divisor is zero", ErrDivisionByZero)
	}
	if overlaps(dividend, divisor) {
		return invalid(op, "dividend and divisor share memory", ErrAliasedOperands)
	}
	if remainder != nil {
		if overlaps(remainder, dividend) || overlaps(remainder, divisor) {
			return invalid(op, "remainder shares memory with an operand", ErrAliasedOperands)
		}
		if need := min(RealSize(dividend), RealSize(divisor)); len(remainder) < need {
			return invalid(op, "remainder cannot hold the result", ErrRemainderTooShort)
		}
	}

	if CompareMagnitude(dividend, divisor) < 0 {
		if remainder != nil {
			clear(remainder)
			copy(remainder, Trim(dividend))
		}
		clear(dividend)
		return nil
	}

	n := len(dividend)
	rem := acquireWords[T](n)
	defer releaseWords(rem)
	d := acquireWords[T](n)
	defer releaseWords(d)
	q := acquireWords[T](n)
	defer releaseWords(q)

	copy(rem, dividend)
	copy(d, Trim(divisor))
	shift := MaximumShiftMSB(d, rem)
	one := [1]T{1}

loop:
	for {
		// rem and d have the same length, so CompareArray compares values.
		for CompareArray(rem, d) >= 0 {
			SubArray(rem, d)
			AddArray(q, one[:])
			if IsZero(rem) {
				ShiftSigB(q, uint(shift))
				break loop
			}
		}
		if shift == 0 {
			break
		}
		ShiftInsigB(d, 1)
		ShiftSigB(q, 1)
		shift--
	}

	if remainder != nil {
		clear(remainder)
		copy(remainder, rem)
	}
	copy(dividend, q)
	return nil
}
