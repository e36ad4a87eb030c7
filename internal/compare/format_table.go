package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/intax/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing regimes
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Gross Income:  %s\n", output.FormatINR(compSet.GrossIncome)))
	sb.WriteString(fmt.Sprintf("80C / 80D:     %s / %s\n",
		output.FormatINR(compSet.Deductions.Section80C),
		output.FormatINR(compSet.Deductions.Section80D)))
	sb.WriteString("\n")

	nameWidth := 24
	numWidth := 17

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Regime",
		numWidth, "Taxable Income",
		numWidth, "Tax Payable",
		numWidth, "Effective Rate"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 && compSet.BaseResult != nil {
		sb.WriteString(fmt.Sprintf("\nCOMPARISON TO %s\n", strings.ToUpper(compSet.BaseResult.Label)))
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			symbol := tf.deltaSymbol(alt.TaxDiffFromBase)
			sb.WriteString(fmt.Sprintf("  %-*s %s%s\n", nameWidth, alt.Label+":", symbol,
				output.FormatINR(alt.TaxDiffFromBase.Abs())))
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString("  • " + rec + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := r.Label
	if isBase {
		name += " (base)"
	}
	if r.RebateApplied {
		name += " *"
	}
	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, name,
		numWidth, output.FormatINR(r.TaxableIncome),
		numWidth, output.FormatINR(r.TaxPayable),
		numWidth, output.FormatPercentage(r.EffectiveRate))
}

// deltaSymbol marks higher tax with "+" and lower tax with "-"
func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	switch {
	case d.GreaterThan(decimal.Zero):
		return "+"
	case d.LessThan(decimal.Zero):
		return "-"
	default:
		return " "
	}
}
