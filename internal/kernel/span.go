package kernel

import "unsafe"

// MSDZeros returns the number of most significant zero words of x, i.e. the
// words that do not contribute to its value. A zero span returns len(x).
func MSDZeros[T Word](x []T) int {
	return CountZeros(x, len(x)-1, -1)
}

// RealSize returns the number of words of x below its most significant zero
// words. It is 0 when x is zero.
func RealSize[T Word](x []T) int {
	return len(x) - MSDZeros(x)
}

// Trim returns x without its most significant zero words. The result aliases x.
func Trim[T Word](x []T) []T {
	return x[:RealSize(x)]
}

// overlaps reports whether x and y share at least one word of memory.
func overlaps[T Word](x, y []T) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	size := unsafe.Sizeof(x[0])
	xs := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	ys := uintptr(unsafe.Pointer(unsafe.SliceData(y)))
	xe := xs + uintptr(len(x))*size
	ye := ys + uintptr(len(y))*size
	return xs < ye && ys < xe
}
