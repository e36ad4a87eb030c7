package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Regime",
		"Label",
		"Is Base",
		"Gross Income",
		"Taxable Income",
		"Tax Payable",
		"Effective Rate",
		"Rebate Applied",
		"Tax Diff From Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet, compSet.BaseResult, true)); err != nil {
			return "", err
		}
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(compSet, &compSet.AlternativeResults[i], false)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(compSet *ComparisonSet, r *ComparisonResult, isBase bool) []string {
	return []string{
		r.Regime,
		r.Label,
		strconv.FormatBool(isBase),
		compSet.GrossIncome.StringFixed(2),
		r.TaxableIncome.StringFixed(2),
		r.TaxPayable.StringFixed(2),
		r.EffectiveRate.StringFixed(4),
		strconv.FormatBool(r.RebateApplied),
		r.TaxDiffFromBase.StringFixed(2),
	}
}
