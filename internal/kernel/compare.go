package kernel

// CompareArray compares a and b and returns -1, 0 or +1.
//
// The shorter span is the smaller one regardless of its contents; words are
// only inspected, most significant first, when the lengths are equal. Callers
// that compare values with different amounts of zero padding must trim both
// spans first (see CompareMagnitude).
func CompareArray[T Word](a, b []T) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// CompareMagnitude compares the numeric values of a and b, ignoring most
// significant zero words.
func CompareMagnitude[T Word](a, b []T) int {
	return CompareArray(Trim(a), Trim(b))
}

// IsZero reports whether every word of x is zero.
func IsZero[T Word](x []T) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether x holds the value 1.
func IsOne[T Word](x []T) bool {
	return len(x) > 0 && x[0] == 1 && IsZero(x[1:])
}
