// Package ieee754 encodes finite nonzero decimal numbers into the IEEE 754
// binary interchange formats, rendered as strings of '0' and '1' characters
// in sign, exponent, mantissa order.
//
// Four widths are supported: binary16, binary32, binary64, and the 80-bit
// extended format with its explicit integer bit.
package ieee754

import "errors"

// A Precision selects the target encoding width.
type Precision int

const (
	Half           Precision = 16 // binary16: 1 sign, 5 exponent, 10 fraction
	Single         Precision = 32 // binary32: 1 sign, 8 exponent, 23 fraction
	Double         Precision = 64 // binary64: 1 sign, 11 exponent, 52 fraction
	ExtendedDouble Precision = 80 // extended: 1 sign, 15 exponent, 1 integer, 63 fraction
)

var (
	// ErrPrecision reports a width other than 16, 32, 64 or 80.
	ErrPrecision = errors.New("unsupported precision")
	// ErrUnsupportedValue reports a value with no normalized encoding:
	// zero, ±Inf or NaN.
	ErrUnsupportedValue = errors.New("unsupported value")
	// ErrExponentRange reports a biased exponent that does not fit the
	// exponent field. Such a value would need an infinity or subnormal
	// encoding, which the encoder does not produce.
	ErrExponentRange = errors.New("exponent out of range")
)

// layout describes the bit fields of one precision class.
// For the implicit-bit formats 1 + exp + frac equals the total width;
// the extended format spends one extra bit on the stored integer bit.
type layout struct {
	exp      int // exponent field width
	frac     int // fraction field width, integer bit excluded
	bias     int
	explicit bool // integer bit is stored
}

func (p Precision) layout() (layout, bool) {
	switch p {
	case Half:
		return layout{exp: 5, frac: 10, bias: 15}, true
	case Single:
		return layout{exp: 8, frac: 23, bias: 127}, true
	case Double:
		return layout{exp: 11, frac: 52, bias: 1023}, true
	case ExtendedDouble:
		return layout{exp: 15, frac: 63, bias: 16383, explicit: true}, true
	}
	return layout{}, false
}

func (l layout) width() int {
	w := 1 + l.exp + l.frac
	if l.explicit {
		w++
	}
	return w
}
