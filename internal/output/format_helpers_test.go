package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.Zero, "₹0.00"},
		{decimal.NewFromInt(999), "₹999.00"},
		{decimal.NewFromInt(1000), "₹1,000.00"},
		{decimal.NewFromInt(100000), "₹1,00,000.00"},
		{decimal.NewFromFloat(1234567.891), "₹12,34,567.89"},
		{decimal.NewFromInt(123456789), "₹12,34,56,789.00"},
		{decimal.NewFromInt(-250000), "-₹2,50,000.00"},
		{decimal.NewFromFloat(-0.001), "₹0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.in))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "5.63%", FormatPercentage(decimal.NewFromFloat(0.056333)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
}

func TestFormatRegimeLabel(t *testing.T) {
	assert.Equal(t, "Old Regime", FormatRegimeLabel("old"))
	assert.Equal(t, "New Regime (FY2025-26)", FormatRegimeLabel("new-fy2025-26"))
	assert.Equal(t, "custom", FormatRegimeLabel("custom"))
}
