package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/intax/internal/output"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted summary of a solver result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Target:              %s\n", tf.describeTarget(result)))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	if result.RequiredDeductions != nil {
		sb.WriteString("REQUIRED DEDUCTIONS\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString(fmt.Sprintf("Section 80C:         %s\n", output.FormatINR(result.RequiredDeductions.Section80C)))
		sb.WriteString(fmt.Sprintf("Section 80D:         %s\n", output.FormatINR(result.RequiredDeductions.Section80D)))
		sb.WriteString("\n")
	}
	if result.RequiredGross != nil {
		sb.WriteString("REQUIRED GROSS SALARY\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString(fmt.Sprintf("Annual:              %s\n", output.FormatINR(*result.RequiredGross)))
		sb.WriteString("\n")
	}

	yr := result.Year
	sb.WriteString("AT THIS POINT\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Gross Income:        %s\n", output.FormatINR(yr.GrossIncome)))
	sb.WriteString(fmt.Sprintf("Old Regime Tax:      %s\n", output.FormatINR(yr.OldRegime.TaxPayable)))
	sb.WriteString(fmt.Sprintf("%-21s%s\n", output.FormatRegimeLabel(yr.NewRegime.Regime)+" Tax:", output.FormatINR(yr.NewRegime.TaxPayable)))
	sb.WriteString(fmt.Sprintf("In-Hand (Monthly):   %s\n", output.FormatINR(yr.InHandMonthly)))

	return sb.String()
}

func (tf *TableFormatter) describeTarget(result *Result) string {
	switch result.Target {
	case TargetDeductions:
		return "deductions for the old regime to break even"
	case TargetGrossForInHand:
		if result.Request.TargetMonthlyInHand != nil {
			return "gross salary for " + output.FormatINR(*result.Request.TargetMonthlyInHand) + " in hand per month"
		}
		return "gross salary for target in-hand income"
	}
	return string(result.Target)
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ solved"
	}
	return "✗ no solution in range"
}

// JSONFormatter formats solver results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for a solver result
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
