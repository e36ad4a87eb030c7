package calculation

import (
	"testing"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// TestComputeTax_OldRegime covers slab integration, rebate and cess
func TestComputeTax_OldRegime(t *testing.T) {
	regime := OldRegime()

	tests := []struct {
		name        string
		gross       decimal.Decimal
		deductions  domain.Deductions
		expectedTax decimal.Decimal
		taxable     decimal.Decimal
		rebate      bool
	}{
		{name: "zero income", gross: d(0), expectedTax: d(0), taxable: d(0)},
		{name: "inside nil slab", gross: d(200000), expectedTax: d(0), taxable: d(200000)},
		{name: "rebate at threshold", gross: d(500000), expectedTax: d(0), taxable: d(500000), rebate: true},
		{name: "deductions pull income under rebate", gross: d(650000), deductions: domain.Deductions{Section80C: d(150000)}, expectedTax: d(0), taxable: d(500000), rebate: true},
		// (12500 + 20000) * 1.04
		{name: "six lakh", gross: d(600000), expectedTax: d(33800), taxable: d(600000)},
		// (12500 + 100000) * 1.04
		{name: "ten lakh", gross: d(1000000), expectedTax: d(117000), taxable: d(1000000)},
		// (12500 + 100000 + 150000) * 1.04
		{name: "fifteen lakh", gross: d(1500000), expectedTax: d(273000), taxable: d(1500000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeTax(regime, tt.gross, tt.deductions)
			assert.True(t, tt.expectedTax.Equal(result.TaxPayable), "expected tax %s, got %s", tt.expectedTax.StringFixed(2), result.TaxPayable.StringFixed(2))
			assert.True(t, tt.taxable.Equal(result.TaxableIncome), "expected taxable %s, got %s", tt.taxable, result.TaxableIncome)
			assert.Equal(t, tt.rebate, result.RebateApplied)
			assert.Equal(t, RegimeOld, result.Regime)
		})
	}
}

func TestComputeTax_CessOnSixLakh(t *testing.T) {
	result := ComputeTax(OldRegime(), d(600000), domain.Deductions{})

	assert.Equal(t, "32500.00", result.BaseTax.StringFixed(2))
	assert.Equal(t, "1300.00", result.Cess.StringFixed(2))
	assert.Equal(t, "33800.00", result.TaxPayable.StringFixed(2))
}

func TestComputeTax_RebateCliff(t *testing.T) {
	atThreshold := ComputeTax(OldRegime(), d(500000), domain.Deductions{})
	aboveThreshold := ComputeTax(OldRegime(), d(500001), domain.Deductions{})

	assert.True(t, atThreshold.TaxPayable.IsZero())
	assert.True(t, aboveThreshold.TaxPayable.GreaterThan(decimal.Zero))
	// no marginal relief: a rupee over the line pays the whole slab tax
	assert.True(t, aboveThreshold.TaxPayable.GreaterThan(d(13000)), "got %s", aboveThreshold.TaxPayable)
}

func TestComputeTax_NewRegimeEditions(t *testing.T) {
	tests := []struct {
		regime      domain.TaxRegime
		gross       int64
		expectedTax string
	}{
		{NewRegimeFY2023_24(), 700000, "0.00"},
		// 3-6L 15000 + 6-9L 10000.10, plus cess
		{NewRegimeFY2023_24(), 700001, "26000.10"},
		{NewRegimeFY2024_25(), 700000, "0.00"},
		// 3-7L 20000 + 7-10L 30000 = 50000 * 1.04
		{NewRegimeFY2024_25(), 1000000, "52000.00"},
		{NewRegimeFY2025_26(), 1200000, "0.00"},
		// 20000 + 40000 + 15000 = 75000 * 1.04
		{NewRegimeFY2025_26(), 1300000, "78000.00"},
		// 20000+40000+60000+80000+100000 + 1,00,000*0.30 = 330000 * 1.04
		{NewRegimeFY2025_26(), 2500000, "343200.00"},
	}

	for _, tt := range tests {
		t.Run(tt.regime.Name, func(t *testing.T) {
			result := ComputeTax(tt.regime, d(tt.gross), domain.Deductions{})
			assert.Equal(t, tt.expectedTax, result.TaxPayable.StringFixed(2))
		})
	}
}

func TestComputeTax_NewRegimeIgnoresDeductions(t *testing.T) {
	deductions := domain.Deductions{Section80C: d(150000), Section80D: d(50000)}
	result := ComputeTax(NewRegime(), d(1500000), deductions)

	assert.True(t, d(1500000).Equal(result.TaxableIncome))
}

func TestComputeTax_DeductionCapping(t *testing.T) {
	over := ComputeTax(OldRegime(), d(1000000), domain.Deductions{Section80C: d(200000), Section80D: d(90000)})
	capped := ComputeTax(OldRegime(), d(1000000), domain.Deductions{Section80C: d(150000), Section80D: d(50000)})

	assert.Equal(t, "800000", over.TaxableIncome.String())
	assert.True(t, over.TaxPayable.Equal(capped.TaxPayable))
}

func TestComputeTax_TaxableIncomeFloorsAtZero(t *testing.T) {
	result := ComputeTax(OldRegime(), d(100000), domain.Deductions{Section80C: d(150000), Section80D: d(50000)})

	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.TaxPayable.IsZero())
}

func TestComputeTax_NonNegativeAndMonotonic(t *testing.T) {
	regime := OldRegime()
	prev := decimal.Zero
	for income := int64(0); income <= 3000000; income += 12500 {
		result := ComputeTax(regime, d(income), domain.Deductions{})
		require.False(t, result.TaxPayable.IsNegative(), "negative tax at %d", income)
		require.True(t, result.TaxPayable.GreaterThanOrEqual(prev), "tax decreased at %d", income)
		prev = result.TaxPayable
	}
}

func TestComputeTax_Idempotent(t *testing.T) {
	deductions := domain.Deductions{Section80C: d(120000), Section80D: d(25000)}
	first := ComputeTax(OldRegime(), d(1234567), deductions)
	second := ComputeTax(OldRegime(), d(1234567), deductions)

	assert.Equal(t, first, second)
}

func TestBracketTax_BoundaryContinuity(t *testing.T) {
	regime := OldRegime()

	// Tax at each slab's upper bound equals the sum of the full lower slabs
	cumulative := decimal.Zero
	lower := decimal.Zero
	for _, b := range regime.Brackets {
		if b.IsOpen() {
			break
		}
		cumulative = cumulative.Add(b.UpperBound.Sub(lower).Mul(b.Rate))
		lower = *b.UpperBound

		got := BracketTax(regime.Brackets, *b.UpperBound)
		assert.True(t, cumulative.Equal(got), "at %s expected %s got %s", b.UpperBound, cumulative, got)
	}

	assert.Equal(t, "112500", BracketTax(regime.Brackets, d(1000000)).String())
	assert.True(t, BracketTax(regime.Brackets, d(-5)).IsZero())
}

func TestCompareRegimes(t *testing.T) {
	deductions := domain.Deductions{Section80C: d(150000), Section80D: d(50000)}

	_, _, rec := CompareRegimes(OldRegime(), NewRegime(), d(1100000), deductions)
	assert.Equal(t, RegimeNewFY2025_26, rec, "new regime rebate should win under 12L")

	// both zero: tie goes to old
	_, _, rec = CompareRegimes(OldRegime(), NewRegime(), d(400000), domain.Deductions{})
	assert.Equal(t, RegimeOld, rec)
}
