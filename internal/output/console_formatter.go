package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a human-readable report
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf, "INCOME TAX & IN-HAND SALARY REPORT")
	fmt.Fprintln(&buf, "=================================================================")
	if report.Profile.Name != "" {
		fmt.Fprintf(&buf, "Prepared for: %s\n", report.Profile.Name)
	}
	fmt.Fprintln(&buf)

	for _, yr := range report.Years {
		WriteYearReport(&buf, yr)
		fmt.Fprintln(&buf)
	}

	if len(report.Years) > 1 {
		fmt.Fprintf(&buf, "Total tax over %d years: %s\n\n", len(report.Years), FormatINR(report.TotalTaxPaid()))
	}

	if report.SIP != nil {
		WriteSIPReport(&buf, report.Profile.SIP, *report.SIP, report.SIPSchedule)
	}
	return buf.Bytes(), nil
}

// WriteYearReport prints the breakdown for one year
func WriteYearReport(w io.Writer, yr domain.YearReport) {
	title := fmt.Sprintf("YEAR %d", yr.State.Index)
	if yr.State.Year != 0 {
		title = fmt.Sprintf("%s (FY%d-%02d)", title, yr.State.Year, (yr.State.Year+1)%100)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "  Gross Income:            %s\n", FormatINR(yr.GrossIncome))
	fmt.Fprintln(w)

	writeTaxResult(w, yr.OldRegime, yr.GrossIncome)
	writeTaxResult(w, yr.NewRegime, yr.GrossIncome)

	fmt.Fprintf(w, "  Recommended:             %s (saves %s)\n", FormatRegimeLabel(yr.RecommendedRegime), FormatINR(yr.TaxSavings()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  OUTFLOWS:")
	fmt.Fprintf(w, "    Income Tax:            %s\n", FormatINR(yr.Recommended().TaxPayable))
	fmt.Fprintf(w, "    PF Contribution:       %s\n", FormatINR(yr.PFContribution))
	fmt.Fprintf(w, "    Expenses:              %s\n", FormatINR(yr.AnnualExpenses))
	if !yr.AnnualSavingsGoal.IsZero() {
		fmt.Fprintf(w, "    Savings Goal:          %s\n", FormatINR(yr.AnnualSavingsGoal))
	}
	fmt.Fprintf(w, "  In-Hand (Annual):        %s\n", FormatINR(yr.InHandAnnual))
	fmt.Fprintf(w, "  In-Hand (Monthly):       %s\n", FormatINR(yr.InHandMonthly))
}

func writeTaxResult(w io.Writer, r domain.TaxResult, gross decimal.Decimal) {
	fmt.Fprintf(w, "  %s\n", strings.ToUpper(FormatRegimeLabel(r.Regime)))
	fmt.Fprintf(w, "    Taxable Income:        %s\n", FormatINR(r.TaxableIncome))
	if r.RebateApplied {
		fmt.Fprintln(w, "    Section 87A rebate:    tax fully rebated")
	} else {
		fmt.Fprintf(w, "    Slab Tax:              %s\n", FormatINR(r.BaseTax))
		fmt.Fprintf(w, "    Cess (4%%):             %s\n", FormatINR(r.Cess))
	}
	fmt.Fprintf(w, "    Tax Payable:           %s\n", FormatINR(r.TaxPayable))
	fmt.Fprintf(w, "    Effective Rate:        %s\n", FormatPercentage(r.EffectiveRate(gross)))
	fmt.Fprintln(w)
}

// WriteSIPReport prints a SIP projection with its yearly schedule
func WriteSIPReport(w io.Writer, params domain.SIPParameters, result domain.SIPResult, schedule []domain.SIPYear) {
	fmt.Fprintln(w, "SIP PROJECTION")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "  Monthly Contribution:    %s\n", FormatINR(params.MonthlyContribution))
	fmt.Fprintf(w, "  Expected Return:         %s%% p.a.\n", params.AnnualReturnPct.StringFixed(2))
	fmt.Fprintf(w, "  Duration:                %d years\n", params.DurationYears)
	fmt.Fprintf(w, "  Total Invested:          %s\n", FormatINR(result.TotalInvested))
	fmt.Fprintf(w, "  Projected Corpus:        %s\n", FormatINR(result.ProjectedCorpus))
	fmt.Fprintf(w, "  Estimated Gains:         %s\n", FormatINR(result.EstimatedGains))

	if len(schedule) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %-6s %20s %20s\n", "Year", "Invested", "Corpus")
		for _, y := range schedule {
			fmt.Fprintf(w, "  %-6d %20s %20s\n", y.Year, FormatINR(y.Invested), FormatINR(y.Corpus))
		}
	}
}
