package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultPFPercent is the statutory EPF employee contribution rate
var DefaultPFPercent = decimal.NewFromInt(12)

// ExpenseItem is a recurring monthly expense line
type ExpenseItem struct {
	Name    string          `yaml:"name" json:"name"`
	Monthly decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// Profile captures everything a session collects from the user.
// It is loaded from YAML or assembled by the interactive session.
type Profile struct {
	Name               string          `yaml:"name,omitempty" json:"name,omitempty"`
	AnnualSalary       decimal.Decimal `yaml:"annual_salary" json:"annual_salary"`
	ContributesPF      bool            `yaml:"contributes_pf" json:"contributes_pf"`
	PFPercent          decimal.Decimal `yaml:"pf_percent" json:"pf_percent"`
	Expenses           []ExpenseItem   `yaml:"expenses,omitempty" json:"expenses,omitempty"`
	Deductions         Deductions      `yaml:"deductions" json:"deductions"`
	MonthlySavingsGoal decimal.Decimal `yaml:"monthly_savings_goal" json:"monthly_savings_goal"`
	SIP                SIPParameters   `yaml:"sip" json:"sip"`
	SalaryHikePct      decimal.Decimal `yaml:"salary_hike_pct" json:"salary_hike_pct"`
	Years              int             `yaml:"years" json:"years"`
	StartYear          int             `yaml:"start_year,omitempty" json:"start_year,omitempty"`
	NewRegime          string          `yaml:"new_regime,omitempty" json:"new_regime,omitempty"`
}

// MonthlyExpenses sums the expense line items
func (p Profile) MonthlyExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Expenses {
		total = total.Add(e.Monthly)
	}
	return total
}

// EffectivePFPercent returns the PF rate that applies, or zero when the
// participant does not contribute.
func (p Profile) EffectivePFPercent() decimal.Decimal {
	if !p.ContributesPF {
		return decimal.Zero
	}
	if p.PFPercent.IsZero() {
		return DefaultPFPercent
	}
	return p.PFPercent
}

// YearState is the per-iteration state of a multi-year session.
// Values are never mutated; Next produces the following year's state.
type YearState struct {
	Index  int             `json:"index"`
	Year   int             `json:"year"`
	Salary decimal.Decimal `json:"salary"`
}

// InitialYearState builds the first state for a profile
func InitialYearState(p Profile) YearState {
	return YearState{Index: 1, Year: p.StartYear, Salary: p.AnnualSalary}
}

// Next returns the state for the following year with the salary raised by
// hikePct percent.
func (s YearState) Next(hikePct decimal.Decimal) YearState {
	factor := decimal.NewFromInt(1).Add(hikePct.Div(decimal.NewFromInt(100)))
	next := YearState{Index: s.Index + 1, Salary: s.Salary.Mul(factor)}
	if s.Year != 0 {
		next.Year = s.Year + 1
	}
	return next
}
