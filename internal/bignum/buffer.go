package bignum

import (
	"errors"
	"fmt"
	"slices"

	"github.com/agbru/ultranum/internal/kernel"
)

// ErrIndexOutOfRange is wrapped by every IndexError.
var ErrIndexOutOfRange = errors.New("bignum: index out of range")

// IndexError reports an access outside a Buffer.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("bignum: index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Buffer owns the word storage of a Number. The kernel only ever sees the
// span returned by Words; growing and shrinking happen here, before and
// after kernel calls.
type Buffer[T kernel.Word] struct {
	words []T
}

// NewBuffer returns a zeroed buffer of n words.
func NewBuffer[T kernel.Word](n int) *Buffer[T] {
	return &Buffer[T]{words: make([]T, max(n, 0))}
}

// BufferFrom returns a buffer holding a copy of words.
func BufferFrom[T kernel.Word](words ...T) *Buffer[T] {
	return &Buffer[T]{words: slices.Clone(words)}
}

// Len returns the number of words in use.
func (b *Buffer[T]) Len() int { return len(b.words) }

// Cap returns the number of words the buffer can hold without reallocating.
func (b *Buffer[T]) Cap() int { return cap(b.words) }

// At returns word i.
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= len(b.words) {
		return 0, &IndexError{Index: i, Len: len(b.words)}
	}
	return b.words[i], nil
}

// Set stores v at word i.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= len(b.words) {
		return &IndexError{Index: i, Len: len(b.words)}
	}
	b.words[i] = v
	return nil
}

// Grow appends n zero words at the most significant end.
func (b *Buffer[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	old := len(b.words)
	b.words = slices.Grow(b.words, n)[:old+n]
	clear(b.words[old:])
}

// Shrink drops the n most significant words.
func (b *Buffer[T]) Shrink(n int) error {
	if n < 0 || n > len(b.words) {
		return &IndexError{Index: n, Len: len(b.words)}
	}
	b.words = b.words[:len(b.words)-n]
	return nil
}

// Resize grows or shrinks the buffer to exactly n words.
func (b *Buffer[T]) Resize(n int) error {
	if n < 0 {
		return &IndexError{Index: n, Len: len(b.words)}
	}
	if n > len(b.words) {
		b.Grow(n - len(b.words))
		return nil
	}
	return b.Shrink(len(b.words) - n)
}

// Words returns the live span over the buffer. It is invalidated by Grow.
func (b *Buffer[T]) Words() []T { return b.words }

// Clone returns an independent copy of b.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return &Buffer[T]{words: slices.Clone(b.words)}
}
