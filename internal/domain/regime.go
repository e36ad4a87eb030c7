package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one slab of a progressive tax table.
// A nil UpperBound marks the final, open-ended slab.
type TaxBracket struct {
	UpperBound *decimal.Decimal `yaml:"upper_bound,omitempty" json:"upper_bound,omitempty"`
	Rate       decimal.Decimal  `yaml:"rate" json:"rate"`
}

// IsOpen reports whether the bracket has no upper bound
func (b TaxBracket) IsOpen() bool {
	return b.UpperBound == nil
}

// TaxRegime describes a statutory tax regime as data: an ordered slab table,
// the Section 87A rebate threshold and the health & education cess rate.
type TaxRegime struct {
	Name             string          `yaml:"name" json:"name"`
	Label            string          `yaml:"label" json:"label"`
	Brackets         []TaxBracket    `yaml:"brackets" json:"brackets"`
	RebateThreshold  decimal.Decimal `yaml:"rebate_threshold" json:"rebate_threshold"`
	CessRate         decimal.Decimal `yaml:"cess_rate" json:"cess_rate"`
	AllowsDeductions bool            `yaml:"allows_deductions" json:"allows_deductions"`
}

// Statutory deduction ceilings
var (
	Section80CCap = decimal.NewFromInt(150000)
	Section80DCap = decimal.NewFromInt(50000)
)

// Deductions holds the old-regime deduction claims. Amounts above the
// statutory ceilings are accepted and capped by Capped.
type Deductions struct {
	Section80C decimal.Decimal `yaml:"section_80c" json:"section_80c"`
	Section80D decimal.Decimal `yaml:"section_80d" json:"section_80d"`
}

// Capped returns a copy with each claim clamped to [0, cap]
func (d Deductions) Capped() Deductions {
	return Deductions{
		Section80C: clamp(d.Section80C, Section80CCap),
		Section80D: clamp(d.Section80D, Section80DCap),
	}
}

// Total returns the sum of the capped claims
func (d Deductions) Total() decimal.Decimal {
	c := d.Capped()
	return c.Section80C.Add(c.Section80D)
}

func clamp(v, ceiling decimal.Decimal) decimal.Decimal {
	if v.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return decimal.Min(v, ceiling)
}

// TaxResult is the outcome of a single tax computation
type TaxResult struct {
	Regime        string          `json:"regime"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	BaseTax       decimal.Decimal `json:"base_tax"`
	Cess          decimal.Decimal `json:"cess"`
	TaxPayable    decimal.Decimal `json:"tax_payable"`
	RebateApplied bool            `json:"rebate_applied"`
}

// EffectiveRate returns tax payable as a fraction of gross income
func (r TaxResult) EffectiveRate(gross decimal.Decimal) decimal.Decimal {
	if gross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return r.TaxPayable.Div(gross)
}
