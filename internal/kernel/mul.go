package kernel

// halfDigit returns half digit i of x, where half digit 2k is the low half of
// word k and 2k+1 its high half.
func halfDigit[T Word](x []T, i int, h uint, mask T) T {
	w := x[i/2]
	if i%2 == 1 {
		w >>= h
	}
	return w & mask
}

// MulArray multiplies dst by src in place, truncating the product to
// len(dst) words.
//
// Both operands are read as sequences of half-width digits so that every
// digit product fits in one word. Each product is added with AddArray into a
// scratch accumulator at its half-digit offset, and the accumulator is copied
// back over dst. Callers that need the full product must size dst to
// len(dst)+len(src) words beforehand; the kernel never grows it.
func MulArray[T Word](dst, src []T) error {
	if overlaps(dst, src) {
		return invalid("MulArray", "dst and src share memory", ErrAliasedOperands)
	}
	a, b := Trim(dst), Trim(src)
	if len(a) == 0 || len(b) == 0 {
		clear(dst)
		return nil
	}

	h := halfBits[T]()
	mask := T(1)<<h - 1

	acc := acquireWords[T](len(dst) + len(src))
	defer releaseWords(acc)

	// Half-digit offsets at or above limit fall outside dst.
	limit := 2 * len(dst)
	var part [2]T
	for i := 0; i < 2*len(a); i++ {
		x := halfDigit(a, i, h, mask)
		if x == 0 {
			continue
		}
		for j := 0; j < 2*len(b) && i+j < limit; j++ {
			y := halfDigit(b, j, h, mask)
			if y == 0 {
				continue
			}
			p := x * y
			k := i + j
			if k%2 == 0 {
				part[0], part[1] = p, 0
			} else {
				part[0], part[1] = p<<h, p>>h
			}
			AddArray(acc[k/2:], part[:])
		}
	}

	copy(dst, acc[:len(dst)])
	return nil
}
