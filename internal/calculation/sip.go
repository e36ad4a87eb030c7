package calculation

import (
	"math"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// compoundPrecision bounds intermediate digits when raising to integer powers
const compoundPrecision = 20

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual return percentage into the equivalent
// effective monthly rate, (1 + pct/100)^(1/12) - 1.
func MonthlyRate(annualReturnPct decimal.Decimal) decimal.Decimal {
	growth := 1 + annualReturnPct.Div(hundred).InexactFloat64()
	if growth <= 0 {
		return one.Neg()
	}
	return decimal.NewFromFloat(math.Pow(growth, 1.0/12) - 1)
}

// compound raises base to a non-negative integer power by squaring
func compound(base decimal.Decimal, n int64) decimal.Decimal {
	result := one
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(compoundPrecision)
		}
		base = base.Mul(base).Round(compoundPrecision)
		n >>= 1
	}
	return result
}

// sipCorpus is the future value of an annuity-due of monthly contributions
func sipCorpus(monthly, monthlyRate decimal.Decimal, months int64) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	if monthlyRate.IsZero() {
		return monthly.Mul(decimal.NewFromInt(months))
	}
	factor := one.Add(monthlyRate)
	growth := compound(factor, months)
	return monthly.Mul(growth.Sub(one)).Div(monthlyRate).Mul(factor)
}

// ProjectSIP projects the terminal corpus of a SIP with contributions made at
// the start of each month.
func ProjectSIP(params domain.SIPParameters) domain.SIPResult {
	months := int64(params.DurationYears) * 12
	if months < 0 {
		months = 0
	}
	invested := params.MonthlyContribution.Mul(decimal.NewFromInt(months))
	corpus := sipCorpus(params.MonthlyContribution, MonthlyRate(params.AnnualReturnPct), months)
	return domain.SIPResult{
		TotalInvested:   invested,
		ProjectedCorpus: corpus,
		EstimatedGains:  corpus.Sub(invested),
	}
}

// ProjectSIPSchedule returns the corpus at the end of each plan year
func ProjectSIPSchedule(params domain.SIPParameters) []domain.SIPYear {
	if params.DurationYears <= 0 {
		return nil
	}
	r := MonthlyRate(params.AnnualReturnPct)
	schedule := make([]domain.SIPYear, 0, params.DurationYears)
	for y := 1; y <= params.DurationYears; y++ {
		months := int64(y) * 12
		schedule = append(schedule, domain.SIPYear{
			Year:     y,
			Invested: params.MonthlyContribution.Mul(decimal.NewFromInt(months)),
			Corpus:   sipCorpus(params.MonthlyContribution, r, months),
		})
	}
	return schedule
}
