package transform

import (
	"fmt"

	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/output"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RaiseSalary raises the annual salary by a percentage
type RaiseSalary struct {
	Percent decimal.Decimal
}

func (t *RaiseSalary) Name() string { return "raise_salary" }

func (t *RaiseSalary) Description() string {
	return fmt.Sprintf("Raise salary by %s%%", t.Percent.String())
}

func (t *RaiseSalary) Validate(base domain.Profile) error {
	if t.Percent.LessThanOrEqual(hundred.Neg()) {
		return NewTransformError(t.Name(), "validate", "cut of 100% or more leaves no salary", nil)
	}
	return nil
}

func (t *RaiseSalary) Apply(base domain.Profile) (domain.Profile, error) {
	p := clone(base)
	p.AnnualSalary = p.AnnualSalary.Mul(decimal.NewFromInt(1).Add(t.Percent.Div(hundred)))
	return p, nil
}

// SetSalary replaces the annual salary
type SetSalary struct {
	Amount decimal.Decimal
}

func (t *SetSalary) Name() string { return "set_salary" }

func (t *SetSalary) Description() string {
	return "Set salary to " + output.FormatINR(t.Amount)
}

func (t *SetSalary) Validate(base domain.Profile) error {
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "salary cannot be negative", nil)
	}
	return nil
}

func (t *SetSalary) Apply(base domain.Profile) (domain.Profile, error) {
	p := clone(base)
	p.AnnualSalary = t.Amount
	return p, nil
}

// SetDeductions replaces the 80C and 80D claims. Nil fields are left as is.
type SetDeductions struct {
	Section80C *decimal.Decimal
	Section80D *decimal.Decimal
}

func (t *SetDeductions) Name() string { return "set_deductions" }

func (t *SetDeductions) Description() string {
	desc := "Set deductions"
	if t.Section80C != nil {
		desc += " 80C=" + output.FormatINR(*t.Section80C)
	}
	if t.Section80D != nil {
		desc += " 80D=" + output.FormatINR(*t.Section80D)
	}
	return desc
}

func (t *SetDeductions) Validate(base domain.Profile) error {
	if t.Section80C == nil && t.Section80D == nil {
		return NewTransformError(t.Name(), "validate", "at least one of 80c or 80d is required", nil)
	}
	if (t.Section80C != nil && t.Section80C.IsNegative()) || (t.Section80D != nil && t.Section80D.IsNegative()) {
		return NewTransformError(t.Name(), "validate", "deductions cannot be negative", nil)
	}
	return nil
}

func (t *SetDeductions) Apply(base domain.Profile) (domain.Profile, error) {
	p := clone(base)
	if t.Section80C != nil {
		p.Deductions.Section80C = *t.Section80C
	}
	if t.Section80D != nil {
		p.Deductions.Section80D = *t.Section80D
	}
	return p, nil
}

// SetRegime switches the new-regime edition the profile compares against
type SetRegime struct {
	Regime string
}

func (t *SetRegime) Name() string { return "set_regime" }

func (t *SetRegime) Description() string {
	return "Compare against " + output.FormatRegimeLabel(calculation.NormalizeRegimeName(t.Regime))
}

func (t *SetRegime) Validate(base domain.Profile) error {
	regime, err := calculation.LookupRegime(t.Regime)
	if err != nil {
		return NewTransformError(t.Name(), "validate", "unknown regime", err)
	}
	if regime.Name == calculation.RegimeOld {
		return NewTransformError(t.Name(), "validate", "the old regime is always compared; choose a new-regime edition", nil)
	}
	return nil
}

func (t *SetRegime) Apply(base domain.Profile) (domain.Profile, error) {
	p := clone(base)
	p.NewRegime = calculation.NormalizeRegimeName(t.Regime)
	return p, nil
}

// SetPF sets the PF contribution percentage; zero stops contributions
type SetPF struct {
	Percent decimal.Decimal
}

func (t *SetPF) Name() string { return "set_pf" }

func (t *SetPF) Description() string {
	if t.Percent.IsZero() {
		return "Stop PF contributions"
	}
	return fmt.Sprintf("Contribute %s%% to PF", t.Percent.String())
}

func (t *SetPF) Validate(base domain.Profile) error {
	if t.Percent.IsNegative() || t.Percent.GreaterThan(hundred) {
		return NewTransformError(t.Name(), "validate", "PF percent must be between 0 and 100", nil)
	}
	return nil
}

func (t *SetPF) Apply(base domain.Profile) (domain.Profile, error) {
	p := clone(base)
	p.ContributesPF = t.Percent.GreaterThan(decimal.Zero)
	p.PFPercent = t.Percent
	return p, nil
}

// SetSIP replaces the SIP plan
type SetSIP struct {
	SIP domain.SIPParameters
}

func (t *SetSIP) Name() string { return "set_sip" }

func (t *SetSIP) Description() string {
	return fmt.Sprintf("SIP of %s/month at %s%% for %d years",
		output.FormatINR(t.SIP.MonthlyContribution), t.SIP.AnnualReturnPct.String(), t.SIP.DurationYears)
}

func (t *SetSIP) Validate(base domain.Profile) error {
	if t.SIP.MonthlyContribution.IsNegative() || t.SIP.AnnualReturnPct.IsNegative() || t.SIP.DurationYears < 0 {
		return NewTransformError(t.Name(), "validate", "SIP values cannot be negative", nil)
	}
	if t.SIP.MonthlyContribution.GreaterThan(decimal.Zero) && t.SIP.DurationYears == 0 {
		return NewTransformError(t.Name(), "validate", "SIP duration is required", nil)
	}
	return nil
}

func (t *SetSIP) Apply(base domain.Profile) (domain.Profile, error) {
	p := clone(base)
	p.SIP = t.SIP
	return p, nil
}

// SetSavingsGoal replaces the monthly savings goal
type SetSavingsGoal struct {
	Monthly decimal.Decimal
}

func (t *SetSavingsGoal) Name() string { return "set_savings_goal" }

func (t *SetSavingsGoal) Description() string {
	return "Save " + output.FormatINR(t.Monthly) + " per month"
}

func (t *SetSavingsGoal) Validate(base domain.Profile) error {
	if t.Monthly.IsNegative() {
		return NewTransformError(t.Name(), "validate", "savings goal cannot be negative", nil)
	}
	return nil
}

func (t *SetSavingsGoal) Apply(base domain.Profile) (domain.Profile, error) {
	p := clone(base)
	p.MonthlySavingsGoal = t.Monthly
	return p, nil
}
