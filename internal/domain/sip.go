package domain

import "github.com/shopspring/decimal"

// SIPParameters describes a systematic investment plan
type SIPParameters struct {
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnPct     decimal.Decimal `yaml:"annual_return_pct" json:"annual_return_pct"`
	DurationYears       int             `yaml:"duration_years" json:"duration_years"`
}

// IsZero reports whether no SIP was configured
func (p SIPParameters) IsZero() bool {
	return p.MonthlyContribution.IsZero() && p.DurationYears == 0
}

// SIPResult holds the projected outcome of a SIP
type SIPResult struct {
	TotalInvested   decimal.Decimal `json:"total_invested"`
	ProjectedCorpus decimal.Decimal `json:"projected_corpus"`
	EstimatedGains  decimal.Decimal `json:"estimated_gains"`
}

// SIPYear is the corpus at the end of a given plan year
type SIPYear struct {
	Year     int             `json:"year"`
	Invested decimal.Decimal `json:"invested"`
	Corpus   decimal.Decimal `json:"corpus"`
}
