package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/intax/internal/breakeven"
	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/compare"
	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/output"
	"github.com/rgehrsitz/intax/internal/session"
	"github.com/rgehrsitz/intax/internal/transform"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleProfile = "../testdata/example_profile.yaml"

func loadReport(t *testing.T) *domain.Report {
	t.Helper()
	parser := config.NewInputParser()
	profile, err := parser.LoadFromFile(exampleProfile)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	report, err := engine.ProjectYears(*profile)
	require.NoError(t, err)
	return report
}

func TestExampleProfile_Projection(t *testing.T) {
	report := loadReport(t)

	require.Len(t, report.Years, 3)
	first := report.Years[0]
	assert.Equal(t, 2025, first.State.Year)
	assert.Equal(t, "124800.00", first.OldRegime.TaxPayable.StringFixed(2))
	assert.True(t, first.NewRegime.RebateApplied)
	assert.Equal(t, calculation.RegimeNewFY2025_26, first.RecommendedRegime)

	// 12L - 0 tax - 1.44L PF - 3.6L expenses - 60k savings
	assert.Equal(t, "636000.00", first.InHandAnnual.StringFixed(2))

	for i := 1; i < len(report.Years); i++ {
		prev, cur := report.Years[i-1], report.Years[i]
		assert.True(t, cur.GrossIncome.GreaterThan(prev.GrossIncome))
		assert.True(t, cur.Recommended().TaxPayable.GreaterThanOrEqual(prev.Recommended().TaxPayable))
		assert.Equal(t, prev.State.Year+1, cur.State.Year)
	}

	require.NotNil(t, report.SIP)
	assert.Equal(t, "600000", report.SIP.TotalInvested.String())
	assert.True(t, report.SIP.ProjectedCorpus.GreaterThan(report.SIP.TotalInvested))
	assert.Len(t, report.SIPSchedule, 10)
}

func TestExampleProfile_AllFormats(t *testing.T) {
	report := loadReport(t)

	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			f := output.GetFormatterByName(name)
			require.NotNil(t, f)
			data, err := f.Format(report)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}

	data, err := output.GetFormatterByName("json").Format(report)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestExampleProfile_CompareMatchesEngine(t *testing.T) {
	report := loadReport(t)
	first := report.Years[0]

	ce := compare.NewCompareEngine(calculation.NewCalculationEngine())
	set, err := ce.Compare(context.Background(), compare.CompareOptions{
		GrossIncome: first.GrossIncome,
		Deductions:  report.Profile.Deductions,
		Regimes:     []string{calculation.DefaultNewRegime},
	})
	require.NoError(t, err)

	require.Len(t, set.AlternativeResults, 1)
	assert.True(t, set.BaseResult.TaxPayable.Equal(first.OldRegime.TaxPayable))
	assert.True(t, set.AlternativeResults[0].TaxPayable.Equal(first.NewRegime.TaxPayable))
}

func TestSessionMatchesProfileRun(t *testing.T) {
	input := strings.Join([]string{
		"1200000", "yes", "12", "30000", "150000", "25000", "5000", "0", "no",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := session.New(strings.NewReader(input), &out, calculation.NewCalculationEngine())
	require.NoError(t, s.Run(context.Background()))

	report := loadReport(t)
	inHand := output.FormatINR(report.Years[0].InHandAnnual)
	assert.Contains(t, out.String(), inHand)
}

func TestTaxNeverNegative(t *testing.T) {
	for _, name := range calculation.RegimeNames() {
		regime, err := calculation.LookupRegime(name)
		require.NoError(t, err)

		prev := decimal.Zero
		for income := int64(0); income <= 5000000; income += 25000 {
			r := calculation.ComputeTax(regime, decimal.NewFromInt(income), domain.Deductions{})
			assert.False(t, r.TaxPayable.IsNegative(), "%s at %d", name, income)
			assert.True(t, r.TaxPayable.GreaterThanOrEqual(prev), "%s at %d", name, income)
			prev = r.TaxPayable
		}
	}
}

func TestBreakevenGrossIsFirstToReachTarget(t *testing.T) {
	profile, err := config.NewInputParser().LoadFromFile(exampleProfile)
	require.NoError(t, err)

	whatIf, err := transform.NewTransformRegistry().ParseTransformSpec("set_regime:name=new-fy2024-25")
	require.NoError(t, err)
	adjusted, err := transform.ApplyTransforms(*profile, []transform.ProfileTransform{whatIf})
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	target := decimal.NewFromInt(100000)
	res, err := breakeven.NewDefaultSolver(engine).Solve(context.Background(), breakeven.Request{
		Target:              breakeven.TargetGrossForInHand,
		Profile:             adjusted,
		TargetMonthlyInHand: &target,
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, res.RequiredGross)
	assert.Equal(t, calculation.RegimeNewFY2024_25, res.Year.NewRegime.Regime)

	inHandAt := func(gross decimal.Decimal) decimal.Decimal {
		p := adjusted
		p.AnnualSalary = gross
		yr, err := engine.CalculateYear(p, domain.InitialYearState(p))
		require.NoError(t, err)
		return yr.InHandMonthly
	}
	assert.True(t, inHandAt(*res.RequiredGross).GreaterThanOrEqual(target))
	assert.True(t, inHandAt(res.RequiredGross.Sub(decimal.NewFromInt(1))).LessThan(target))
}
