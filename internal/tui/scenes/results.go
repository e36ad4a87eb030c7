package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/output"
	"github.com/rgehrsitz/intax/internal/tui/components"
	"github.com/rgehrsitz/intax/internal/tui/tuimsg"
	"github.com/rgehrsitz/intax/internal/tui/tuistyles"
)

var (
	prevYearKey = key.NewBinding(key.WithKeys("left", "h"))
	nextYearKey = key.NewBinding(key.WithKeys("right", "l"))
	backKey     = key.NewBinding(key.WithKeys("esc"))
)

// ResultsModel shows the computed report one year at a time
type ResultsModel struct {
	report *domain.Report
	year   int
	width  int
	height int
}

// NewResultsModel creates an empty results scene
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetReport replaces the report and resets to the first year
func (m *ResultsModel) SetReport(report *domain.Report) {
	m.report = report
	m.year = 0
}

// Report returns the report on display
func (m *ResultsModel) Report() *domain.Report {
	return m.report
}

// SelectedYear returns the zero-based index of the year on display
func (m *ResultsModel) SelectedYear() int {
	return m.year
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, backKey):
		return m, func() tea.Msg { return tuimsg.BackToFormMsg{} }
	case key.Matches(keyMsg, prevYearKey):
		if m.year > 0 {
			m.year--
		}
	case key.Matches(keyMsg, nextYearKey):
		if m.report != nil && m.year < len(m.report.Years)-1 {
			m.year++
		}
	}
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.report == nil || len(m.report.Years) == 0 {
		return tuistyles.BorderStyle.Render("No results yet.\n\nFill in the form and press enter.")
	}
	yr := m.report.Years[m.year]

	header := tuistyles.TitleStyle.Render(fmt.Sprintf("Year %d of %d", m.year+1, len(m.report.Years)))
	if yr.State.Year != 0 {
		header += tuistyles.SubtitleStyle.Render(fmt.Sprintf("  FY%d-%02d", yr.State.Year, (yr.State.Year+1)%100))
	}

	cards := []*components.MetricCard{
		taxCard(yr.OldRegime, yr),
		taxCard(yr.NewRegime, yr),
		components.NewMetricCard("In-Hand (Monthly)", output.FormatINR(yr.InHandMonthly)).
			WithDescription("Annual " + output.FormatINR(yr.InHandAnnual)),
	}
	if m.report.SIP != nil {
		cards = append(cards, components.NewMetricCard("SIP Corpus", output.FormatINR(m.report.SIP.ProjectedCorpus)).
			WithTrend(true, "gains "+output.FormatINR(m.report.SIP.EstimatedGains)).
			WithDescription(fmt.Sprintf("%d years, invested %s", m.report.Profile.SIP.DurationYears, output.FormatINR(m.report.SIP.TotalInvested))))
	}

	columns := 2
	if m.width >= 130 {
		columns = len(cards)
	}

	breakdown := []string{
		(&components.MetricCard{Label: "Gross income", Value: output.FormatINR(yr.GrossIncome)}).RenderCompact(),
		(&components.MetricCard{Label: "PF contribution", Value: output.FormatINR(yr.PFContribution)}).RenderCompact(),
		(&components.MetricCard{Label: "Expenses", Value: output.FormatINR(yr.AnnualExpenses)}).RenderCompact(),
		(&components.MetricCard{Label: "Savings goal", Value: output.FormatINR(yr.AnnualSavingsGoal)}).RenderCompact(),
	}
	if yr.InHandAnnual.IsNegative() {
		breakdown = append(breakdown, tuistyles.ErrorStyle.Render("Outflows exceed gross income"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		components.MetricGrid(cards, columns),
		"",
		strings.Join(breakdown, "\n"),
	)
}

func taxCard(r domain.TaxResult, yr domain.YearReport) *components.MetricCard {
	card := components.NewMetricCard(output.FormatRegimeLabel(r.Regime)+" Tax", output.FormatINR(r.TaxPayable))
	if r.Regime == yr.RecommendedRegime {
		card.WithTrend(true, "best, saves "+output.FormatINR(yr.TaxSavings()))
	}
	desc := "Effective " + output.FormatPercentage(r.EffectiveRate(yr.GrossIncome))
	if r.RebateApplied {
		desc += ", 87A rebate"
	}
	return card.WithDescription(desc)
}
