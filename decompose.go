package ieee754

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// decompose splits d into a sign flag, the integer magnitude and the
// fractional magnitude. The fractional part satisfies 0 <= fp < 1.
func decompose(d decimal.Decimal) (neg bool, ip *big.Int, fp decimal.Decimal) {
	neg = d.Sign() < 0
	ip, fp = split(d.Abs())
	return neg, ip, fp
}

// split separates a non-negative decimal into its integer part and the
// fractional remainder. The arithmetic is exact: the coefficient and
// scale are taken apart directly, no binary round-trip is involved.
func split(d decimal.Decimal) (*big.Int, decimal.Decimal) {
	coef := d.Coefficient()
	exp := d.Exponent()
	if exp >= 0 {
		// Coefficient may alias the decimal's own storage, do not
		// mutate it in place.
		return new(big.Int).Mul(coef, pow10(int(exp))), decimal.Decimal{}
	}
	ip, rem := new(big.Int).QuoRem(coef, pow10(int(-exp)), new(big.Int))
	return ip, decimal.NewFromBigInt(rem, exp)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
