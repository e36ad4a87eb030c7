package domain

import "github.com/shopspring/decimal"

// YearReport holds the derived figures for one projection year
type YearReport struct {
	State             YearState       `json:"state"`
	GrossIncome       decimal.Decimal `json:"gross_income"`
	OldRegime         TaxResult       `json:"old_regime"`
	NewRegime         TaxResult       `json:"new_regime"`
	RecommendedRegime string          `json:"recommended_regime"`
	PFContribution    decimal.Decimal `json:"pf_contribution"`
	AnnualExpenses    decimal.Decimal `json:"annual_expenses"`
	AnnualSavingsGoal decimal.Decimal `json:"annual_savings_goal"`
	InHandAnnual      decimal.Decimal `json:"in_hand_annual"`
	InHandMonthly     decimal.Decimal `json:"in_hand_monthly"`
}

// Recommended returns the tax result of the recommended regime
func (y YearReport) Recommended() TaxResult {
	if y.RecommendedRegime == y.NewRegime.Regime {
		return y.NewRegime
	}
	return y.OldRegime
}

// TaxSavings is the absolute difference between the two regimes
func (y YearReport) TaxSavings() decimal.Decimal {
	return y.OldRegime.TaxPayable.Sub(y.NewRegime.TaxPayable).Abs()
}

// TotalOutflow is everything taken out of gross income before in-hand
func (y YearReport) TotalOutflow() decimal.Decimal {
	return y.Recommended().TaxPayable.Add(y.PFContribution).Add(y.AnnualExpenses).Add(y.AnnualSavingsGoal)
}

// Report is the full output of a calculation run
type Report struct {
	Profile     Profile      `json:"profile"`
	Years       []YearReport `json:"years"`
	SIP         *SIPResult   `json:"sip,omitempty"`
	SIPSchedule []SIPYear    `json:"sip_schedule,omitempty"`
}

// FirstYear returns the first projection year, if any
func (r *Report) FirstYear() (YearReport, bool) {
	if r == nil || len(r.Years) == 0 {
		return YearReport{}, false
	}
	return r.Years[0], true
}

// TotalTaxPaid sums recommended-regime tax over all years
func (r *Report) TotalTaxPaid() decimal.Decimal {
	total := decimal.Zero
	for _, y := range r.Years {
		total = total.Add(y.Recommended().TaxPayable)
	}
	return total
}
