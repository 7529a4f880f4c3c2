package bignum

import (
	"math/big"

	"github.com/agbru/ultranum/internal/kernel"
)

// BigFromWords returns the unsigned value held in x.
func BigFromWords[T kernel.Word](x []T) *big.Int {
	per := int(kernel.WordBits[T]() / 8)
	buf := make([]byte, len(x)*per)
	for i, w := range x {
		for j := 0; j < per; j++ {
			buf[len(buf)-1-(i*per+j)] = byte(uint64(w) >> (8 * j))
		}
	}
	return new(big.Int).SetBytes(buf)
}

// WordsFromBig packs v modulo 2^(W*n) into n words. Negative values come out
// in two's complement.
func WordsFromBig[T kernel.Word](v *big.Int, n int) []T {
	out := make([]T, n)
	storeBig(out, v)
	return out
}

// storeBig overwrites x with v modulo 2^(W*len(x)).
func storeBig[T kernel.Word](x []T, v *big.Int) {
	per := int(kernel.WordBits[T]() / 8)
	m := windowOf[T](len(x))
	t := new(big.Int).Mod(v, m)
	buf := t.FillBytes(make([]byte, len(x)*per))
	for i := range x {
		var w uint64
		for j := 0; j < per; j++ {
			w |= uint64(buf[len(buf)-1-(i*per+j)]) << (8 * j)
		}
		x[i] = T(w)
	}
}

// windowOf returns 2^(W*n).
func windowOf[T kernel.Word](n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), kernel.WordBits[T]()*uint(n))
}
