package kernel

import "math/big"

// toBig returns the value held in x.
func toBig[T Word](x []T) *big.Int {
	v := new(big.Int)
	w := WordBits[T]()
	for i := len(x) - 1; i >= 0; i-- {
		v.Lsh(v, w)
		v.Or(v, new(big.Int).SetUint64(uint64(x[i])))
	}
	return v
}

// fromBig packs v modulo base^n into n words.
func fromBig[T Word](v *big.Int, n int) []T {
	w := WordBits[T]()
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), w), big.NewInt(1))
	m := new(big.Int).Lsh(big.NewInt(1), w*uint(n))
	t := new(big.Int).Mod(v, m)
	out := make([]T, n)
	for i := range out {
		out[i] = T(new(big.Int).And(t, mask).Uint64())
		t.Rsh(t, w)
	}
	return out
}

// narrow truncates raw 64-bit samples to words of T.
func narrow[T Word](raw []uint64) []T {
	out := make([]T, len(raw))
	for i, r := range raw {
		out[i] = T(r)
	}
	return out
}

// window returns base^n for T.
func window[T Word](n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), WordBits[T]()*uint(n))
}

// packUint64 splits v into 16-bit words, least significant first.
func packUint64(v uint64) []uint16 {
	return []uint16{uint16(v), uint16(v >> 16), uint16(v >> 32), uint16(v >> 48)}
}

// unpackUint64 reassembles four 16-bit words into one 64-bit value.
func unpackUint64(w []uint16) uint64 {
	return uint64(w[0]) | uint64(w[1])<<16 | uint64(w[2])<<32 | uint64(w[3])<<48
}
