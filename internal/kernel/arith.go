package kernel

// AddArray adds src into dst in place and returns the carry out of the most
// significant word of dst.
//
// The sum is truncated to len(dst): a carry past the last word is reported
// but never stored, which is the fixed-width wraparound contract. Words of
// src beyond len(dst) are ignored. Once src is exhausted a pending carry keeps
// rippling through the rest of dst.
func AddArray[T Word](dst, src []T) T {
	n := min(len(dst), len(src))
	var carry T
	for i := 0; i < n; i++ {
		s := dst[i] + src[i]
		next := s < src[i]
		dst[i] = s + carry
		if dst[i] < carry {
			next = true
		}
		carry = 0
		if next {
			carry = 1
		}
	}
	for i := n; i < len(dst) && carry != 0; i++ {
		dst[i]++
		if dst[i] != 0 {
			carry = 0
		}
	}
	return carry
}

// SubArray subtracts src from dst in place and returns the borrow out of the
// most significant word of dst.
//
// Each word is subtracted by adding the two's complement of the src word; a
// borrow of one is carried into the next word only when the src word (plus
// the incoming borrow) exceeds the dst word. If src is larger than dst the
// result wraps around modulo base^len(dst); use CompareMagnitude first when
// that matters.
func SubArray[T Word](dst, src []T) T {
	n := min(len(dst), len(src))
	var borrow T
	for i := 0; i < n; i++ {
		next := src[i] > dst[i] || (borrow != 0 && src[i] == dst[i])
		dst[i] += TwoComp(src[i])
		dst[i] += TwoComp(borrow)
		borrow = 0
		if next {
			borrow = 1
		}
	}
	for i := n; i < len(dst) && borrow != 0; i++ {
		dst[i]--
		if dst[i] != ^T(0) {
			borrow = 0
		}
	}
	return borrow
}
