package kernel

import (
	"fmt"
	"testing"
)

func TestAcquireWords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		size    int
		wantCap int
	}{
		{"small", 10, 64},
		{"medium", 100, 256},
		{"large", 1000, 1024},
		{"xlarge", 5000, 16384},
		{"too_large", 500000, 500000}, // Direct allocation
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := acquireWords[uint32](tt.size)
			defer releaseWords(s)
			if len(s) != tt.size {
				t.Errorf("acquireWords(%d) length = %d, want %d", tt.size, len(s), tt.size)
			}
			if cap(s) != tt.wantCap {
				t.Errorf("acquireWords(%d) cap = %d, want %d", tt.size, cap(s), tt.wantCap)
			}
			if !IsZero(s) {
				t.Errorf("acquireWords(%d) returned dirty words", tt.size)
			}
		})
	}
}

func TestAcquireWordsIsZeroedAfterReuse(t *testing.T) {
	t.Parallel()
	s := acquireWords[uint16](40)
	for i := range s {
		s[i] = 0xBEEF
	}
	releaseWords(s)

	again := acquireWords[uint16](40)
	defer releaseWords(again)
	if !IsZero(again) {
		t.Error("reused scratch slice was not cleared")
	}
}

// myWord is a named word type; it has no pool and must fall back to make.
type myWord uint16

func TestAcquireWordsNamedType(t *testing.T) {
	t.Parallel()
	before := ReadPoolStats().Direct
	s := acquireWords[myWord](8)
	releaseWords(s)
	if len(s) != 8 {
		t.Errorf("length = %d, want 8", len(s))
	}
	if ReadPoolStats().Direct <= before {
		t.Error("named word types should bypass the pools")
	}
}

func TestGetWordSlicePoolIndex(t *testing.T) {
	t.Parallel()
	linear := func(size int) int {
		for i, s := range wordSliceSizes {
			if size <= s {
				return i
			}
		}
		return -1
	}
	for _, size := range []int{1, 63, 64, 65, 255, 256, 257, 1024, 4097, 65536, 262144, 262145} {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			t.Parallel()
			if got, want := getWordSlicePoolIndex(size), linear(size); got != want {
				t.Errorf("getWordSlicePoolIndex(%d) = %d, want %d", size, got, want)
			}
		})
	}
}

func TestWarmPools(t *testing.T) {
	t.Parallel()
	WarmPools(100, 2)
	s := acquireWords[uint64](100)
	defer releaseWords(s)
	if cap(s) != 256 {
		t.Errorf("cap = %d, want 256", cap(s))
	}
}

func TestDivisionReleasesScratch(t *testing.T) {
	// Not parallel: reads the global counters.
	before := ReadPoolStats()
	q := []uint64{1, 2, 3}
	if err := DivArrayShift(q, []uint64{5}, nil); err != nil {
		t.Fatal(err)
	}
	after := ReadPoolStats()
	acquired := after.Acquired - before.Acquired
	released := (after.Released - before.Released) + (after.Direct - before.Direct)
	if acquired == 0 || released < acquired {
		t.Errorf("acquired %d scratch slices but released %d", acquired, released)
	}
}
