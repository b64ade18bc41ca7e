package ieee754

import (
	"bytes"
	"fmt"
	"math"

	"github.com/shogo82148/int128"
	"github.com/shopspring/decimal"
)

// A RoundingMode selects how the bits beyond the fraction field are
// folded into the last retained fraction bit.
type RoundingMode int

const (
	// RoundGuardBit overwrites the last retained fraction bit with the
	// guard bit: a guard of 1 forces it to 1, a guard of 0 forces it
	// to 0. This is the default.
	RoundGuardBit RoundingMode = iota
	// RoundNearestEven rounds to the nearest representable value,
	// breaking ties toward an even last bit.
	RoundNearestEven
)

// An Encoder converts decimals into the bit-level representation of one
// precision class. The zero Rounding is RoundGuardBit.
type Encoder struct {
	Precision Precision
	Rounding  RoundingMode
}

// Encode returns the sign, exponent and mantissa fields of d as a
// string of '0' and '1' characters, Precision characters long.
//
// d must be nonzero and its exponent must fit the exponent field:
// values that would need an infinity or subnormal encoding are reported
// as ErrExponentRange, and no bit pattern is produced for them.
func (e Encoder) Encode(d decimal.Decimal) (string, error) {
	l, ok := e.Precision.layout()
	if !ok {
		return "", fmt.Errorf("ieee754: %d bits: %w", e.Precision, ErrPrecision)
	}
	if d.IsZero() {
		return "", fmt.Errorf("ieee754: cannot encode zero: %w", ErrUnsupportedValue)
	}
	neg, ip, fp := decompose(d)

	// Locate the leading 1 and accumulate the significand: the leading
	// bit itself, l.frac fraction bits and one guard bit. At the
	// extended width that is 65 bits, one more than uint64 holds.
	intb := integerBits(ip)
	need := l.frac + 2
	var (
		exp    int
		sig    int128.Uint128
		n      int
		sticky bool
	)
	if len(intb) > 0 {
		exp = len(intb) - 1
		for i := 0; i < len(intb); i++ {
			if n < need {
				sig = pushBit(sig, intb[i])
				n++
			} else if intb[i] == '1' {
				sticky = true
			}
		}
		if n < need {
			digits, rem := fractionalDigits(fp, 2, need-n)
			for _, c := range digits {
				sig = pushBit(sig, c)
				n++
			}
			sticky = !rem.IsZero()
		} else {
			sticky = sticky || !fp.IsZero()
		}
	} else {
		// The leading 1 of the fractional expansion must show up
		// before the exponent field bottoms out; past that point the
		// value is subnormal at this width.
		digits, rem := fractionalDigits(fp, 2, l.bias-1)
		lead := bytes.IndexByte(digits, '1')
		if lead < 0 {
			return "", fmt.Errorf("ieee754: %s: %w", d, ErrExponentRange)
		}
		exp = -(lead + 1)
		for _, c := range digits[lead:] {
			if n < need {
				sig = pushBit(sig, c)
				n++
			} else if c == '1' {
				sticky = true
			}
		}
		if n < need {
			var more []byte
			more, rem = fractionalDigits(rem, 2, need-n)
			for _, c := range more {
				sig = pushBit(sig, c)
				n++
			}
		}
		sticky = sticky || !rem.IsZero()
	}
	// Natural sequence shorter than the field: pad with zeros.
	for ; n < need; n++ {
		sig = sig.Lsh(1)
	}

	biased := exp + l.bias
	guard := sig.L & 1
	sig = sig.Rsh(1)
	one := int128.Uint128{L: 1}
	switch e.Rounding {
	case RoundNearestEven:
		if guard == 1 && (sticky || sig.L&1 == 1) {
			sig = sig.Add(one)
			if top := one.Lsh(uint(l.frac + 1)); sig.Cmp(top) == 0 {
				// carry out of the fraction field
				sig = sig.Rsh(1)
				biased++
			}
		}
	default:
		if guard == 1 {
			if sig.L&1 == 0 {
				sig = sig.Add(one)
			}
		} else if sig.L&1 == 1 {
			sig = sig.Sub(one)
		}
	}
	if biased <= 0 || biased >= 1<<l.exp-1 {
		return "", fmt.Errorf("ieee754: biased exponent %d does not fit %d bits: %w", biased, l.exp, ErrExponentRange)
	}

	buf := make([]byte, 0, l.width())
	if neg {
		buf = append(buf, '1')
	} else {
		buf = append(buf, '0')
	}
	buf = appendBitField(buf, uint64(biased), l.exp)
	if l.explicit {
		// the integer bit is 1 whenever the exponent field is nonzero
		buf = append(buf, '1')
	}
	for i := l.frac - 1; i >= 0; i-- {
		buf = append(buf, byte('0'+sig.Rsh(uint(i)).L&1))
	}
	return string(buf), nil
}

func pushBit(v int128.Uint128, c byte) int128.Uint128 {
	v = v.Lsh(1)
	if c == '1' {
		v = v.Add(int128.Uint128{L: 1})
	}
	return v
}

// Encode encodes d at precision p with the default guard-bit rounding.
func Encode(d decimal.Decimal, p Precision) (string, error) {
	return Encoder{Precision: p}.Encode(d)
}

// EncodeString parses s as a decimal number and encodes it at precision
// p. Scientific notation is accepted: the parser keeps exact decimal
// digits, so no fixed-point rewrite of the input is needed.
func EncodeString(s string, p Precision) (string, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("ieee754: parsing %q: %w", s, err)
	}
	return Encode(d, p)
}

// EncodeFloat64 encodes the shortest decimal representation of f at
// precision p. NaN and infinities are rejected.
func EncodeFloat64(f float64, p Precision) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("ieee754: cannot encode %v: %w", f, ErrUnsupportedValue)
	}
	return Encode(decimal.NewFromFloat(f), p)
}
