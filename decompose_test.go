package ieee754

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		in  string
		neg bool
		ip  string
		fp  string
	}{
		{"3", false, "3", "0"},
		{"-12.375", true, "12", "0.375"},
		{"-0.5", true, "0", "0.5"},
		{"1e3", false, "1000", "0"},
		{"0.001", false, "0", "0.001"},
		// scientific notation shifts digits across the point exactly
		{"12345.6789e2", false, "1234567", "0.89"},
		{"9.1e-1", false, "0", "0.91"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			require.NoError(t, err)
			neg, ip, fp := decompose(d)
			assert.Equal(t, tt.neg, neg)
			assert.Equal(t, tt.ip, ip.String())
			assert.Equal(t, tt.fp, fp.String())
		})
	}
}
