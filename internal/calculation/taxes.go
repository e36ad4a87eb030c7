package calculation

import (
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// BracketTax integrates a progressive slab table over taxable income.
// Each slab taxes the portion of income above the previous slab's upper
// bound, up to its own bound; the open final slab takes the remainder.
// Rebate and cess are not applied here.
func BracketTax(brackets []domain.TaxBracket, taxable decimal.Decimal) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	lower := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThanOrEqual(lower) {
			break
		}
		incomeInBracket := taxable.Sub(lower)
		if b.IsOpen() {
			tax = tax.Add(incomeInBracket.Mul(b.Rate))
			break
		}
		width := b.UpperBound.Sub(lower)
		if width.LessThanOrEqual(decimal.Zero) {
			continue
		}
		incomeInBracket = decimal.Min(incomeInBracket, width)
		tax = tax.Add(incomeInBracket.Mul(b.Rate))
		lower = *b.UpperBound
	}
	return tax
}

// TaxableIncome applies capped deductions for regimes that allow them and
// floors the result at zero.
func TaxableIncome(regime domain.TaxRegime, grossIncome decimal.Decimal, deductions domain.Deductions) decimal.Decimal {
	taxable := grossIncome
	if regime.AllowsDeductions {
		taxable = taxable.Sub(deductions.Total())
	}
	if taxable.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return taxable
}

// ComputeTax calculates tax payable under a regime. Deductions are capped at
// their statutory ceilings and ignored by regimes that do not allow them.
// Taxable income at or below the rebate threshold pays nothing; above it the
// full slab tax applies (no marginal relief) plus cess.
func ComputeTax(regime domain.TaxRegime, grossIncome decimal.Decimal, deductions domain.Deductions) domain.TaxResult {
	taxable := TaxableIncome(regime, grossIncome, deductions)
	result := domain.TaxResult{
		Regime:        regime.Name,
		TaxableIncome: taxable,
		BaseTax:       decimal.Zero,
		Cess:          decimal.Zero,
		TaxPayable:    decimal.Zero,
	}

	tax := BracketTax(regime.Brackets, taxable)

	// Section 87A
	if taxable.LessThanOrEqual(regime.RebateThreshold) {
		result.RebateApplied = tax.GreaterThan(decimal.Zero)
		return result
	}
	if tax.IsZero() {
		return result
	}

	result.BaseTax = tax
	result.Cess = tax.Mul(regime.CessRate)
	result.TaxPayable = tax.Add(result.Cess)
	return result
}

// CompareRegimes computes tax under both regimes and returns the name of the
// cheaper one. Ties go to the old regime.
func CompareRegimes(oldRegime, newRegime domain.TaxRegime, grossIncome decimal.Decimal, deductions domain.Deductions) (oldResult, newResult domain.TaxResult, recommended string) {
	oldResult = ComputeTax(oldRegime, grossIncome, deductions)
	newResult = ComputeTax(newRegime, grossIncome, deductions)
	recommended = oldRegime.Name
	if newResult.TaxPayable.LessThan(oldResult.TaxPayable) {
		recommended = newRegime.Name
	}
	return oldResult, newResult, recommended
}
