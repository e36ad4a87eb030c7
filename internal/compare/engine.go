package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine runs one income through several tax regimes
type CompareEngine struct {
	CalcEngine *calculation.CalculationEngine
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	GrossIncome decimal.Decimal
	Deductions  domain.Deductions
	BaseRegime  string   // Regime the others are compared against (default: old)
	Regimes     []string // Regimes to compare (default: every new-regime edition)
}

// Compare computes tax under the base regime and each alternative
func (ce *CompareEngine) Compare(ctx context.Context, options CompareOptions) (*ComparisonSet, error) {
	baseName := options.BaseRegime
	if baseName == "" {
		baseName = calculation.RegimeOld
	}
	base, err := calculation.LookupRegime(baseName)
	if err != nil {
		return nil, fmt.Errorf("base regime: %w", err)
	}

	names := options.Regimes
	if len(names) == 0 {
		names = calculation.RegimeNames()
	}

	baseResult := ce.evaluate(base, options)
	set := &ComparisonSet{
		GrossIncome: options.GrossIncome,
		Deductions:  options.Deductions,
		BaseRegime:  base.Name,
		BaseResult:  &baseResult,
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		regime, err := calculation.LookupRegime(name)
		if err != nil {
			return nil, err
		}
		if regime.Name == base.Name {
			continue
		}
		alt := ce.evaluate(regime, options)
		alt.TaxDiffFromBase = alt.TaxPayable.Sub(baseResult.TaxPayable)
		set.AlternativeResults = append(set.AlternativeResults, alt)
	}

	set.Recommendations = recommend(set)
	if ce.CalcEngine != nil && ce.CalcEngine.Logger != nil {
		ce.CalcEngine.Logger.Debugf("compared %d regimes against %s", len(set.AlternativeResults), base.Name)
	}
	return set, nil
}

func (ce *CompareEngine) evaluate(regime domain.TaxRegime, options CompareOptions) ComparisonResult {
	r := calculation.ComputeTax(regime, options.GrossIncome, options.Deductions)
	return ComparisonResult{
		Regime:        regime.Name,
		Label:         regime.Label,
		TaxableIncome: r.TaxableIncome,
		TaxPayable:    r.TaxPayable,
		EffectiveRate: r.EffectiveRate(options.GrossIncome),
		RebateApplied: r.RebateApplied,
	}
}

func recommend(set *ComparisonSet) []string {
	var recs []string
	best := set.Cheapest()
	if best == nil {
		return recs
	}
	if best.Regime == set.BaseRegime {
		recs = append(recs, fmt.Sprintf("%s gives the lowest tax for this income", best.Label))
	} else {
		recs = append(recs, fmt.Sprintf("%s saves %s over %s", best.Label, best.TaxDiffFromBase.Neg().StringFixed(2), set.BaseResult.Label))
	}

	if set.BaseRegime == calculation.RegimeOld {
		claimed := set.Deductions.Capped().Section80C
		if claimed.LessThan(domain.Section80CCap) {
			room := domain.Section80CCap.Sub(claimed)
			recs = append(recs, fmt.Sprintf("%s of Section 80C room is unused under the old regime", room.StringFixed(2)))
		}
	}
	return recs
}
