package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxProjectionYears bounds multi-year projections and SIP durations
const MaxProjectionYears = 50

// InputParser handles parsing of profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates profile bytes
func (ip *InputParser) Parse(data []byte) (*domain.Profile, error) {
	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateProfile validates a loaded or interactively assembled profile
func (ip *InputParser) ValidateProfile(profile *domain.Profile) error {
	if profile.AnnualSalary.LessThan(decimal.Zero) {
		return fmt.Errorf("annual salary cannot be negative")
	}
	if profile.PFPercent.LessThan(decimal.Zero) || profile.PFPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("PF percent must be between 0 and 100")
	}
	if profile.MonthlySavingsGoal.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly savings goal cannot be negative")
	}
	if profile.SalaryHikePct.LessThan(decimal.Zero) {
		return fmt.Errorf("salary hike percent cannot be negative")
	}
	if profile.Years < 0 || profile.Years > MaxProjectionYears {
		return fmt.Errorf("years must be between 0 and %d", MaxProjectionYears)
	}

	for i, e := range profile.Expenses {
		if e.Monthly.LessThan(decimal.Zero) {
			return fmt.Errorf("expense %d (%s) cannot be negative", i, e.Name)
		}
	}

	if err := ip.validateDeductions(profile.Deductions); err != nil {
		return fmt.Errorf("deductions validation failed: %w", err)
	}
	if err := ip.validateSIP(profile.SIP); err != nil {
		return fmt.Errorf("SIP validation failed: %w", err)
	}

	if _, err := calculation.LookupRegime(profile.NewRegime); err != nil {
		return err
	}
	return nil
}

// validateDeductions rejects negative claims; amounts over the statutory
// ceilings are accepted and capped by the tax engine.
func (ip *InputParser) validateDeductions(d domain.Deductions) error {
	if d.Section80C.LessThan(decimal.Zero) {
		return fmt.Errorf("section 80C cannot be negative")
	}
	if d.Section80D.LessThan(decimal.Zero) {
		return fmt.Errorf("section 80D cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSIP(sip domain.SIPParameters) error {
	if sip.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if sip.AnnualReturnPct.LessThan(decimal.Zero) {
		return fmt.Errorf("annual return cannot be negative")
	}
	if sip.DurationYears < 0 || sip.DurationYears > MaxProjectionYears {
		return fmt.Errorf("duration must be between 0 and %d years", MaxProjectionYears)
	}
	if sip.MonthlyContribution.GreaterThan(decimal.Zero) && sip.DurationYears == 0 {
		return fmt.Errorf("duration is required when a monthly contribution is set")
	}
	return nil
}
