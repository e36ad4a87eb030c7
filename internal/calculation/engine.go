package calculation

import (
	"fmt"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine turns a profile into per-year reports
type CalculationEngine struct {
	Logger Logger
	Debug  bool // Enable debug output for detailed calculations
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger; nil installs a no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// PFContribution returns the annual provident fund contribution for a salary
func PFContribution(salary, pfPercent decimal.Decimal) decimal.Decimal {
	if pfPercent.LessThanOrEqual(decimal.Zero) || salary.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return salary.Mul(pfPercent).Div(hundred)
}

// InHandIncome is gross less tax, PF, expenses and the savings goal.
// It may be negative when outflows exceed income.
func InHandIncome(gross, tax, pf, expenses, savings decimal.Decimal) decimal.Decimal {
	return gross.Sub(tax).Sub(pf).Sub(expenses).Sub(savings)
}

// CalculateYear computes the report for a single year state
func (ce *CalculationEngine) CalculateYear(profile domain.Profile, state domain.YearState) (domain.YearReport, error) {
	newRegime, err := LookupRegime(profile.NewRegime)
	if err != nil {
		return domain.YearReport{}, err
	}
	oldRegime := OldRegime()
	log := ce.logger()

	gross := state.Salary
	oldResult, newResult, recommended := CompareRegimes(oldRegime, newRegime, gross, profile.Deductions)
	if ce.Debug {
		log.Debugf("year %d: gross=%s old taxable=%s tax=%s", state.Index, gross.StringFixed(2), oldResult.TaxableIncome.StringFixed(2), oldResult.TaxPayable.StringFixed(2))
		log.Debugf("year %d: %s taxable=%s tax=%s", state.Index, newRegime.Name, newResult.TaxableIncome.StringFixed(2), newResult.TaxPayable.StringFixed(2))
	}

	report := domain.YearReport{
		State:             state,
		GrossIncome:       gross,
		OldRegime:         oldResult,
		NewRegime:         newResult,
		RecommendedRegime: recommended,
		PFContribution:    PFContribution(gross, profile.EffectivePFPercent()),
		AnnualExpenses:    profile.MonthlyExpenses().Mul(twelve),
		AnnualSavingsGoal: profile.MonthlySavingsGoal.Mul(twelve),
	}
	report.InHandAnnual = InHandIncome(gross, report.Recommended().TaxPayable, report.PFContribution, report.AnnualExpenses, report.AnnualSavingsGoal)
	report.InHandMonthly = report.InHandAnnual.Div(twelve)

	if report.InHandAnnual.LessThan(decimal.Zero) {
		log.Warnf("year %d: outflows exceed gross income by %s", state.Index, report.InHandAnnual.Neg().StringFixed(2))
	}
	return report, nil
}

// ProjectYears runs the profile over its projection horizon, raising the
// salary by the configured hike between years.
func (ce *CalculationEngine) ProjectYears(profile domain.Profile) (*domain.Report, error) {
	years := profile.Years
	if years < 1 {
		years = 1
	}
	log := ce.logger()
	log.Infof("projecting %d year(s) from salary %s", years, profile.AnnualSalary.StringFixed(2))

	report := &domain.Report{Profile: profile, Years: make([]domain.YearReport, 0, years)}
	state := domain.InitialYearState(profile)
	for i := 0; i < years; i++ {
		yr, err := ce.CalculateYear(profile, state)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", state.Index, err)
		}
		report.Years = append(report.Years, yr)
		state = state.Next(profile.SalaryHikePct)
	}

	if !profile.SIP.IsZero() {
		sip := ProjectSIP(profile.SIP)
		report.SIP = &sip
		report.SIPSchedule = ProjectSIPSchedule(profile.SIP)
	}
	return report, nil
}
