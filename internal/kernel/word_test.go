package kernel

import (
	"errors"
	"testing"
)

func TestWordBits(t *testing.T) {
	t.Parallel()
	if got := WordBits[uint8](); got != 8 {
		t.Errorf("WordBits[uint8]() = %d, want 8", got)
	}
	if got := WordBits[uint16](); got != 16 {
		t.Errorf("WordBits[uint16]() = %d, want 16", got)
	}
	if got := WordBits[uint32](); got != 32 {
		t.Errorf("WordBits[uint32]() = %d, want 32", got)
	}
	if got := WordBits[uint64](); got != 64 {
		t.Errorf("WordBits[uint64]() = %d, want 64", got)
	}
}

func TestTwoComp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   uint16
		want uint16
	}{
		{"zero stays zero", 0, 0},
		{"one becomes max", 1, 0xFFFF},
		{"max becomes one", 0xFFFF, 1},
		{"sign bit is its own complement", 0x8000, 0x8000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TwoComp(tt.in); got != tt.want {
				t.Errorf("TwoComp(%#x) = %#x, want %#x", tt.in, got, tt.want)
			}
			v := tt.in
			TwoCompInPlace(&v)
			if v != tt.want {
				t.Errorf("TwoCompInPlace(%#x) = %#x, want %#x", tt.in, v, tt.want)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()
	var data uint8
	SetFlag(&data, 0x04, true)
	SetFlag(&data, 0x01, true)
	if data != 0x05 {
		t.Fatalf("SetFlag on: data = %#x, want 0x05", data)
	}
	SetFlag(&data, 0x04, false)
	if data != 0x01 {
		t.Fatalf("SetFlag off: data = %#x, want 0x01", data)
	}
	if !ReadFlag(data, 0x01) || ReadFlag(data, 0x02) {
		t.Error("ReadFlag returned the wrong state")
	}
	if !AnyFlagsOn(data, 0x02, 0x01) {
		t.Error("AnyFlagsOn should find 0x01")
	}
	if AnyFlagsOn(data, 0x02, 0x08) {
		t.Error("AnyFlagsOn should not find 0x02 or 0x08")
	}
	if AllFlagsOn(data, 0x01, 0x02) {
		t.Error("AllFlagsOn should fail when 0x02 is off")
	}
	if !AllFlagsOn(uint8(0x03), 0x01, 0x02) {
		t.Error("AllFlagsOn should succeed for 0x01 and 0x02 in 0x03")
	}
	if AllFlagsOn(data) {
		t.Error("AllFlagsOn with no flags should be false")
	}
}

func TestCheckBit(t *testing.T) {
	t.Parallel()
	ok, err := CheckBit(uint16(0x0100), 8)
	if err != nil || !ok {
		t.Errorf("CheckBit(0x0100, 8) = %v, %v; want true, nil", ok, err)
	}
	ok, err = CheckBit(uint16(0x0100), 7)
	if err != nil || ok {
		t.Errorf("CheckBit(0x0100, 7) = %v, %v; want false, nil", ok, err)
	}
	for _, bit := range []int{-1, 16} {
		_, err := CheckBit(uint16(1), bit)
		var invalidErr *InvalidArgumentError
		if !errors.As(err, &invalidErr) {
			t.Errorf("CheckBit(_, %d) error = %v, want InvalidArgumentError", bit, err)
		}
	}
}

func TestGCDAndLCM(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"coprime", 17, 5, 1},
		{"common factor", 84, 36, 12},
		{"equal", 9, 9, 9},
		{"negative operand", -84, 36, 12},
		{"zero operand", 0, 7, 7},
		{"one", 1, 1000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GCD(tt.a, tt.b); got != tt.want {
				t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}

	pair, err := LCM(uint32(4), uint32(6))
	if err != nil {
		t.Fatalf("LCM(4, 6) error: %v", err)
	}
	if 4*pair.First != 12 || 6*pair.Second != 12 {
		t.Errorf("LCM(4, 6) = %+v, cofactors should reach 12", pair)
	}
	if _, err := LCM(uint32(0), uint32(6)); err == nil {
		t.Error("LCM with a zero operand should fail")
	}
}
