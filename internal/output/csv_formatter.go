package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/intax/internal/domain"
)

// CSVFormatter writes one row per projection year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "FiscalYear", "GrossIncome", "OldTaxable", "OldTax", "NewRegime", "NewTaxable", "NewTax", "Recommended", "PF", "Expenses", "SavingsGoal", "InHandAnnual", "InHandMonthly"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range report.Years {
		row := []string{
			strconv.Itoa(yr.State.Index),
			strconv.Itoa(yr.State.Year),
			yr.GrossIncome.StringFixed(2),
			yr.OldRegime.TaxableIncome.StringFixed(2),
			yr.OldRegime.TaxPayable.StringFixed(2),
			yr.NewRegime.Regime,
			yr.NewRegime.TaxableIncome.StringFixed(2),
			yr.NewRegime.TaxPayable.StringFixed(2),
			yr.RecommendedRegime,
			yr.PFContribution.StringFixed(2),
			yr.AnnualExpenses.StringFixed(2),
			yr.AnnualSavingsGoal.StringFixed(2),
			yr.InHandAnnual.StringFixed(2),
			yr.InHandMonthly.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
