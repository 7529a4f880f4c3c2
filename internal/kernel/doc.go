// Package kernel implements fixed-width multi-precision arithmetic directly on
// slices of unsigned words.
//
// A slice is read as the digits of one large integer in base 2^W, where W is
// the bit width of the word type, with index 0 holding the least significant
// word. Every function works inside the window given by len(x): results that
// do not fit are truncated (fixed-width wraparound), and nothing is written
// past the end of a slice. The package allocates only scratch storage, which
// is pooled and always released before a call returns.
//
// The kernel has no sign bit. Negative values, when a caller needs them, are
// the two's complement of the magnitude over the full window.
package kernel
