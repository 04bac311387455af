package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFees(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		wantFee      float64
		wantEarnings float64
	}{
		{"round thousand", 1000.00, 150.00, 850.00},
		{"consultation fee", 2500.00, 375.00, 2125.00},
		{"small amount", 100.00, 15.00, 85.00},
		{"needs rounding", 999.99, 150.00, 849.99},
		{"tiny amount", 1.00, 0.15, 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, earnings := CalculateFees(tt.total)
			assert.Equal(t, tt.wantFee, fee)
			assert.Equal(t, tt.wantEarnings, earnings)
		})
	}
}

func TestCalculateFeesSplitsSumToTotal(t *testing.T) {
	for _, total := range []float64{1.0, 33.33, 250.50, 999.99, 1000.0, 2500.0, 123456.78} {
		fee, earnings := CalculateFees(total)
		assert.Equal(t, round2(total), round2(fee+earnings), "total %v", total)
		assert.GreaterOrEqual(t, fee, 0.0)
		assert.GreaterOrEqual(t, earnings, 0.0)
	}
}
