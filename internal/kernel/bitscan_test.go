package kernel

import (
	"slices"
	"testing"
)

func TestCountZeros(t *testing.T) {
	t.Parallel()
	x := []uint32{0, 0, 5, 0, 0, 0}
	tests := []struct {
		name     string
		from, to int
		want     int
	}{
		{"ascending from start", 0, len(x), 2},
		{"descending from top", len(x) - 1, -1, 3},
		{"ascending on non-zero word", 2, len(x), 0},
		{"empty range", 3, 3, 0},
		{"descending stops at to", 5, 3, 2},
		{"clamped bounds", -4, 99, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CountZeros(x, tt.from, tt.to); got != tt.want {
				t.Errorf("CountZeros(%d, %d) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
	if got := MSDZeros(x); got != 3 {
		t.Errorf("MSDZeros = %d, want 3", got)
	}
	if got := RealSize(x); got != 3 {
		t.Errorf("RealSize = %d, want 3", got)
	}
	if got := RealSize(make([]uint8, 4)); got != 0 {
		t.Errorf("RealSize(zero) = %d, want 0", got)
	}
}

func TestWordShifts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		sig    bool
		amount int
		want   []uint16
	}{
		{"sig by one", true, 1, []uint16{0, 1, 2, 3}},
		{"sig by three", true, 3, []uint16{0, 0, 0, 1}},
		{"sig by length", true, 4, []uint16{0, 0, 0, 0}},
		{"insig by one", false, 1, []uint16{2, 3, 4, 0}},
		{"insig past length", false, 9, []uint16{0, 0, 0, 0}},
		{"zero amount", false, 0, []uint16{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x := []uint16{1, 2, 3, 4}
			if tt.sig {
				ShiftSig(x, tt.amount)
			} else {
				ShiftInsig(x, tt.amount)
			}
			if !slices.Equal(x, tt.want) {
				t.Errorf("got %v, want %v", x, tt.want)
			}
		})
	}
}

func TestBitShifts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		in     []uint8
		sig    bool
		amount uint
		want   []uint8
	}{
		{"sig crosses word", []uint8{0x81, 0x00}, true, 1, []uint8{0x02, 0x01}},
		{"sig word and bits", []uint8{0x0F, 0x00, 0x00}, true, 12, []uint8{0x00, 0xF0, 0x00}},
		{"sig drops top bits", []uint8{0x00, 0x80}, true, 1, []uint8{0x00, 0x00}},
		{"insig crosses word", []uint8{0x00, 0x01}, false, 1, []uint8{0x80, 0x00}},
		{"insig word and bits", []uint8{0x00, 0x00, 0xF0}, false, 12, []uint8{0x00, 0x0F, 0x00}},
		{"full width zeroes", []uint8{0xFF, 0xFF}, true, 16, []uint8{0x00, 0x00}},
		{"zero amount", []uint8{0x12, 0x34}, false, 0, []uint8{0x12, 0x34}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x := slices.Clone(tt.in)
			if tt.sig {
				ShiftSigB(x, tt.amount)
			} else {
				ShiftInsigB(x, tt.amount)
			}
			if !slices.Equal(x, tt.want) {
				t.Errorf("got %#v, want %#v", x, tt.want)
			}
		})
	}
}

func TestMSBNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   []uint16
		want int
	}{
		{"zero", []uint16{0, 0}, 0},
		{"one", []uint16{1, 0}, 1},
		{"top of low word", []uint16{0x8000, 0}, 16},
		{"high word", []uint16{0xFFFF, 0x0003}, 18},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MSBNumber(tt.in); got != tt.want {
				t.Errorf("MSBNumber(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// FuzzShiftRoundTrip checks that shifting down then up by fewer bits than
// the window restores the value with its low bits cleared.
func FuzzShiftRoundTrip(f *testing.F) {
	f.Add(uint64(0xDEADBEEFCAFEBABE), uint64(0x0123456789ABCDEF), uint8(13))
	f.Add(uint64(1), uint64(0), uint8(0))
	f.Add(uint64(0), uint64(1<<63), uint8(127))

	f.Fuzz(func(t *testing.T, lo, hi uint64, k uint8) {
		x := []uint32{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
		amount := uint(k) % 128
		want := toBig(x)
		want.Rsh(want, amount).Lsh(want, amount)

		ShiftInsigB(x, amount)
		ShiftSigB(x, amount)
		if got := toBig(x); got.Cmp(want) != 0 {
			t.Fatalf("round trip by %d: got %s, want %s", amount, got, want)
		}
	})
}
