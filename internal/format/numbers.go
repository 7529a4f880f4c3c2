package format

import (
	"math/big"

	"github.com/dustin/go-humanize"
)

// FormatBigInt formats v in decimal with thousand separators.
func FormatBigInt(v *big.Int) string {
	return humanize.BigComma(new(big.Int).Set(v))
}

// FormatCount formats n with thousand separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatBytes formats a byte count with SI units, e.g. "1.0 MB".
func FormatBytes(n uint64) string {
	return humanize.Bytes(n)
}
