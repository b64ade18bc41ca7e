package ieee754

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// integerBits returns the binary digits of a non-negative integer, most
// significant first, with no leading zeros. Zero yields the empty
// string; callers pad as needed.
func integerBits(x *big.Int) string {
	if x.Sign() == 0 {
		return ""
	}
	return x.Text(2)
}

// fractionalDigits expands 0 <= f < 1 in the given radix by repeated
// multiply-and-extract, producing at most max digits. It stops early
// once the remainder reaches exactly zero. The remainder after the last
// produced digit is returned so callers can detect truncation.
func fractionalDigits(f decimal.Decimal, radix int64, max int) ([]byte, decimal.Decimal) {
	r := decimal.NewFromInt(radix)
	digits := make([]byte, 0, max)
	for len(digits) < max && !f.IsZero() {
		f = f.Mul(r)
		d, rem := split(f)
		digits = append(digits, byte('0'+d.Int64()))
		f = rem
	}
	return digits, f
}

// appendBitField renders v as width binary digits, zero-padded on the
// left, most significant first.
func appendBitField(buf []byte, v uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		buf = append(buf, byte('0'+v>>uint(i)&1))
	}
	return buf
}
