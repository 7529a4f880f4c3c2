// Scratch storage for the multiplication accumulator and the division
// buffers, pooled by size class to keep repeated kernel calls off the GC.

package kernel

import (
	"math/bits"
	"sync"
	"sync/atomic"
)

// wordSliceSizes are the pooled capacities, powers of 4 from 4^3 = 64 words.
var wordSliceSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144}

// wordPool pools []T slices by size class.
type wordPool[T Word] struct {
	classes [len(wordSliceSizes)]sync.Pool
}

var (
	pool8  wordPool[uint8]
	pool16 wordPool[uint16]
	pool32 wordPool[uint32]
	pool64 wordPool[uint64]
)

// poolFor returns the pool serving T, or nil when T is not one of the fixed
// width word types (named types, uint, uintptr); those allocate directly.
func poolFor[T Word]() *wordPool[T] {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(&pool8).(*wordPool[T])
	case uint16:
		return any(&pool16).(*wordPool[T])
	case uint32:
		return any(&pool32).(*wordPool[T])
	case uint64:
		return any(&pool64).(*wordPool[T])
	}
	return nil
}

// getWordSlicePoolIndex returns the size class for size, or -1 if size is too
// large to pool. index i holds 4^(i+3) words.
func getWordSlicePoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordSliceSizes[len(wordSliceSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// PoolStats counts scratch traffic since process start.
type PoolStats struct {
	Acquired uint64 // slices handed out
	Released uint64 // slices returned to a size class
	Direct   uint64 // acquisitions that bypassed the pools
}

var poolAcquired, poolReleased, poolDirect atomic.Uint64

// ReadPoolStats returns a snapshot of the scratch pool counters.
func ReadPoolStats() PoolStats {
	return PoolStats{
		Acquired: poolAcquired.Load(),
		Released: poolReleased.Load(),
		Direct:   poolDirect.Load(),
	}
}

// acquireWords returns a zeroed slice of exactly size words. Release it with
// a deferred releaseWords so every return path gives it back:
//
//	acc := acquireWords[T](n)
//	defer releaseWords(acc)
func acquireWords[T Word](size int) []T {
	poolAcquired.Add(1)
	p := poolFor[T]()
	idx := getWordSlicePoolIndex(size)
	if p == nil || idx < 0 {
		poolDirect.Add(1)
		return make([]T, size)
	}
	s, _ := p.classes[idx].Get().([]T)
	if s == nil {
		return make([]T, size, wordSliceSizes[idx])
	}
	s = s[:size]
	clear(s)
	return s
}

// releaseWords returns s to its size class. Slices that did not come from a
// pool are left to the GC. Safe to call with nil.
func releaseWords[T Word](s []T) {
	if s == nil {
		return
	}
	p := poolFor[T]()
	if p == nil {
		return
	}
	c := cap(s)
	idx := getWordSlicePoolIndex(c)
	if idx >= 0 && wordSliceSizes[idx] == c {
		poolReleased.Add(1)
		p.classes[idx].Put(s[:c])
	}
}

// WarmPools pre-allocates count scratch slices in the size class serving
// words-word operands, for every pooled word width. Multiplication needs
// twice the operand length, so that class is warmed too.
func WarmPools(words, count int) {
	for _, size := range []int{words, 2 * words} {
		idx := getWordSlicePoolIndex(size)
		if idx < 0 {
			continue
		}
		c := wordSliceSizes[idx]
		for i := 0; i < count; i++ {
			pool8.classes[idx].Put(make([]uint8, c))
			pool16.classes[idx].Put(make([]uint16, c))
			pool32.classes[idx].Put(make([]uint32, c))
			pool64.classes[idx].Put(make([]uint64, c))
		}
	}
}
