package compare

import (
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one regime's outcome for the compared income
type ComparisonResult struct {
	Regime        string          `json:"regime"`
	Label         string          `json:"label"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	TaxPayable    decimal.Decimal `json:"tax_payable"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	RebateApplied bool            `json:"rebate_applied"`

	// Comparison to Base
	TaxDiffFromBase decimal.Decimal `json:"tax_diff_from_base"`
}

// ComparisonSet is the result of comparing several regimes on one income
type ComparisonSet struct {
	GrossIncome        decimal.Decimal    `json:"gross_income"`
	Deductions         domain.Deductions  `json:"deductions"`
	BaseRegime         string             `json:"base_regime"`
	BaseResult         *ComparisonResult  `json:"base_result"`
	AlternativeResults []ComparisonResult `json:"alternative_results"`
	Recommendations    []string           `json:"recommendations"`
}

// Cheapest returns the result with the lowest tax; the base wins ties
func (cs *ComparisonSet) Cheapest() *ComparisonResult {
	best := cs.BaseResult
	for i := range cs.AlternativeResults {
		alt := &cs.AlternativeResults[i]
		if best == nil || alt.TaxPayable.LessThan(best.TaxPayable) {
			best = alt
		}
	}
	return best
}
