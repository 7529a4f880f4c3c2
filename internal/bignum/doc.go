// Package bignum composes the kernel primitives into a fixed-width integer
// type.
//
// A Number owns a Buffer of words and delegates every arithmetic step to an
// Ops backend chosen when the Number is built. KernelOps runs the word-level
// kernel; ReferenceOps computes the same results with math/big and exists to
// cross-check it. The word count of a Number never changes across an
// operation: results wrap modulo 2^(W*Len()).
package bignum
