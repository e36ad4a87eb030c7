package transform

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func baseProfile() domain.Profile {
	return domain.Profile{
		Name:          "Test",
		AnnualSalary:  d("1200000"),
		ContributesPF: true,
		PFPercent:     d("12"),
		Expenses: []domain.ExpenseItem{
			{Name: "Rent", Monthly: d("20000")},
		},
		Deductions: domain.Deductions{Section80C: d("150000"), Section80D: d("25000")},
		Years:      1,
	}
}

func TestApplyTransforms_EmptyReturnsCopy(t *testing.T) {
	base := baseProfile()
	result, err := ApplyTransforms(base, nil)
	require.NoError(t, err)
	assert.Equal(t, base, result)

	result.Expenses[0].Monthly = d("1")
	assert.True(t, base.Expenses[0].Monthly.Equal(d("20000")), "expenses must not alias the input")
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(baseProfile(), []ProfileTransform{&SetSalary{Amount: d("1")}, nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 1")
}

func TestApplyTransforms_InOrder(t *testing.T) {
	base := baseProfile()
	result, err := ApplyTransforms(base, []ProfileTransform{
		&SetSalary{Amount: d("1000000")},
		&RaiseSalary{Percent: d("10")},
	})
	require.NoError(t, err)
	assert.True(t, result.AnnualSalary.Equal(d("1100000")), "got %s", result.AnnualSalary)
	assert.True(t, base.AnnualSalary.Equal(d("1200000")), "base must not change")
}

func TestApplyTransforms_ValidationError(t *testing.T) {
	_, err := ApplyTransforms(baseProfile(), []ProfileTransform{&RaiseSalary{Percent: d("-100")}})
	require.Error(t, err)

	var te *TransformError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "raise_salary", te.TransformName)
	assert.Equal(t, "validate", te.Operation)
}

func TestRaiseSalary_Cut(t *testing.T) {
	result, err := ApplyTransforms(baseProfile(), []ProfileTransform{&RaiseSalary{Percent: d("-25")}})
	require.NoError(t, err)
	assert.True(t, result.AnnualSalary.Equal(d("900000")))
}

func TestSetDeductions(t *testing.T) {
	c := d("50000")
	result, err := ApplyTransforms(baseProfile(), []ProfileTransform{&SetDeductions{Section80C: &c}})
	require.NoError(t, err)
	assert.True(t, result.Deductions.Section80C.Equal(c))
	assert.True(t, result.Deductions.Section80D.Equal(d("25000")), "80D untouched")

	_, err = ApplyTransforms(baseProfile(), []ProfileTransform{&SetDeductions{}})
	assert.Error(t, err)

	neg := d("-1")
	_, err = ApplyTransforms(baseProfile(), []ProfileTransform{&SetDeductions{Section80D: &neg}})
	assert.Error(t, err)
}

func TestSetRegime(t *testing.T) {
	result, err := ApplyTransforms(baseProfile(), []ProfileTransform{&SetRegime{Regime: "NEW-FY2023-24"}})
	require.NoError(t, err)
	assert.Equal(t, "new-fy2023-24", result.NewRegime)

	result, err = ApplyTransforms(baseProfile(), []ProfileTransform{&SetRegime{Regime: "new"}})
	require.NoError(t, err)
	assert.Equal(t, "new-fy2025-26", result.NewRegime)

	_, err = ApplyTransforms(baseProfile(), []ProfileTransform{&SetRegime{Regime: "old"}})
	assert.Error(t, err)

	_, err = ApplyTransforms(baseProfile(), []ProfileTransform{&SetRegime{Regime: "flat"}})
	assert.Error(t, err)
}

func TestSetPF(t *testing.T) {
	result, err := ApplyTransforms(baseProfile(), []ProfileTransform{&SetPF{Percent: decimal.Zero}})
	require.NoError(t, err)
	assert.False(t, result.ContributesPF)
	assert.True(t, result.EffectivePFPercent().IsZero())

	result, err = ApplyTransforms(result, []ProfileTransform{&SetPF{Percent: d("10")}})
	require.NoError(t, err)
	assert.True(t, result.ContributesPF)
	assert.True(t, result.EffectivePFPercent().Equal(d("10")))

	_, err = ApplyTransforms(baseProfile(), []ProfileTransform{&SetPF{Percent: d("101")}})
	assert.Error(t, err)
}

func TestSetSIPAndSavingsGoal(t *testing.T) {
	sip := domain.SIPParameters{MonthlyContribution: d("5000"), AnnualReturnPct: d("12"), DurationYears: 10}
	result, err := ApplyTransforms(baseProfile(), []ProfileTransform{
		&SetSIP{SIP: sip},
		&SetSavingsGoal{Monthly: d("8000")},
	})
	require.NoError(t, err)
	assert.Equal(t, sip, result.SIP)
	assert.True(t, result.MonthlySavingsGoal.Equal(d("8000")))

	_, err = ApplyTransforms(baseProfile(), []ProfileTransform{
		&SetSIP{SIP: domain.SIPParameters{MonthlyContribution: d("5000")}},
	})
	assert.Error(t, err)
}

func TestDescriptions(t *testing.T) {
	c := d("150000")
	tests := []struct {
		transform ProfileTransform
		want      string
	}{
		{&RaiseSalary{Percent: d("10")}, "Raise salary by 10%"},
		{&SetSalary{Amount: d("1500000")}, "Set salary to ₹15,00,000.00"},
		{&SetDeductions{Section80C: &c}, "Set deductions 80C=₹1,50,000.00"},
		{&SetRegime{Regime: "new-fy2024-25"}, "Compare against New Regime (FY2024-25)"},
		{&SetPF{Percent: decimal.Zero}, "Stop PF contributions"},
		{&SetSavingsGoal{Monthly: d("5000")}, "Save ₹5,000.00 per month"},
	}
	for _, tt := range tests {
		t.Run(tt.transform.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transform.Description())
		})
	}
}
