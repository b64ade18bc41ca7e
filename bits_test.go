package ieee754

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerBits(t *testing.T) {
	tests := []struct {
		x    *big.Int
		want string
	}{
		{big.NewInt(0), ""},
		{big.NewInt(1), "1"},
		{big.NewInt(10), "1010"},
		{big.NewInt(65504), "1111111111100000"},
		{new(big.Int).Lsh(big.NewInt(1), 70), "1" + strings.Repeat("0", 70)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, integerBits(tt.x), "%v", tt.x)
	}
}

func TestFractionalDigits(t *testing.T) {
	tests := []struct {
		f      string
		radix  int64
		max    int
		digits string
		exact  bool
	}{
		{"0.5", 2, 10, "1", true},
		{"0.625", 2, 10, "101", true},
		{"0.1", 2, 4, "0001", false},
		{"0", 2, 10, "", true},
		{"0.25", 10, 5, "25", true},
		{"0.1", 10, 3, "1", true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.f, tt.radix), func(t *testing.T) {
			f, err := decimal.NewFromString(tt.f)
			require.NoError(t, err)
			digits, rem := fractionalDigits(f, tt.radix, tt.max)
			assert.Equal(t, tt.digits, string(digits))
			assert.Equal(t, tt.exact, rem.IsZero(), "remainder %s", rem)
		})
	}
}

func TestAppendBitField(t *testing.T) {
	tests := []struct {
		v     uint64
		width int
		want  string
	}{
		{0, 3, "000"},
		{5, 4, "0101"},
		{15, 4, "1111"},
		{127, 8, "01111111"},
		{1023, 11, "01111111111"},
		{16383, 15, "011111111111111"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(appendBitField(nil, tt.v, tt.width)), "%d in %d bits", tt.v, tt.width)
	}
}
