package scenes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/tui/tuimsg"
	"github.com/rgehrsitz/intax/internal/tui/tuistyles"
)

// Form field indexes
const (
	FieldSalary = iota
	Field80C
	Field80D
	FieldPFPercent
	FieldExpenses
	FieldSIPMonthly
	FieldSIPReturn
	FieldSIPYears
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldSalary:     "Annual salary (₹)",
	Field80C:        "Section 80C (₹)",
	Field80D:        "Section 80D (₹)",
	FieldPFPercent:  "PF contribution (%)",
	FieldExpenses:   "Monthly expenses (₹)",
	FieldSIPMonthly: "SIP monthly (₹)",
	FieldSIPReturn:  "SIP expected return (%)",
	FieldSIPYears:   "SIP duration (years)",
}

var (
	nextFieldKey = key.NewBinding(key.WithKeys("tab", "down"))
	prevFieldKey = key.NewBinding(key.WithKeys("shift+tab", "up"))
	submitKey    = key.NewBinding(key.WithKeys("enter"))
)

// FormModel is the input scene: one text field per profile value
type FormModel struct {
	inputs  []textinput.Model
	focused int
	base    domain.Profile
	err     error
	width   int
	height  int
}

// NewFormModel creates an empty form with the salary field focused
func NewFormModel() *FormModel {
	m := &FormModel{inputs: make([]textinput.Model, fieldCount)}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 20
		ti.Width = 20
		m.inputs[i] = ti
	}
	m.inputs[FieldSalary].Placeholder = "12,00,000"
	m.inputs[FieldPFPercent].Placeholder = "0"
	m.inputs[FieldSIPReturn].Placeholder = "12"
	m.inputs[FieldSIPYears].Placeholder = "10"
	m.inputs[FieldSalary].Focus()
	return m
}

// SetProfile pre-fills the form from a loaded profile. Values the form does
// not edit (hike, years, regime edition) are carried through on submit.
func (m *FormModel) SetProfile(p domain.Profile) {
	m.base = p
	m.setAmount(FieldSalary, p.AnnualSalary)
	m.setAmount(Field80C, p.Deductions.Section80C)
	m.setAmount(Field80D, p.Deductions.Section80D)
	m.setAmount(FieldPFPercent, p.EffectivePFPercent())
	m.setAmount(FieldExpenses, p.MonthlyExpenses())
	m.setAmount(FieldSIPMonthly, p.SIP.MonthlyContribution)
	m.setAmount(FieldSIPReturn, p.SIP.AnnualReturnPct)
	if p.SIP.DurationYears > 0 {
		m.inputs[FieldSIPYears].SetValue(strconv.Itoa(p.SIP.DurationYears))
	}
}

func (m *FormModel) setAmount(field int, v decimal.Decimal) {
	if v.IsZero() {
		m.inputs[field].SetValue("")
		return
	}
	m.inputs[field].SetValue(v.String())
}

// SetValue sets a field's raw text
func (m *FormModel) SetValue(field int, value string) {
	if field >= 0 && field < len(m.inputs) {
		m.inputs[field].SetValue(value)
	}
}

// Value returns a field's raw text
func (m *FormModel) Value(field int) string {
	if field < 0 || field >= len(m.inputs) {
		return ""
	}
	return m.inputs[field].Value()
}

// Focused returns the index of the focused field
func (m *FormModel) Focused() int {
	return m.focused
}

// Err returns the last validation error, if any
func (m *FormModel) Err() error {
	return m.err
}

// SetSize updates the scene dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Profile parses the form into a profile. Blank optional fields are zero.
func (m *FormModel) Profile() (domain.Profile, error) {
	p := m.base
	var err error

	if p.AnnualSalary, err = config.ParseAmount("salary", m.Value(FieldSalary)); err != nil {
		return p, err
	}
	if p.Deductions.Section80C, err = optionalAmount("80C", m.Value(Field80C)); err != nil {
		return p, err
	}
	if p.Deductions.Section80D, err = optionalAmount("80D", m.Value(Field80D)); err != nil {
		return p, err
	}

	pf, err := optionalPercent("PF percent", m.Value(FieldPFPercent))
	if err != nil {
		return p, err
	}
	p.ContributesPF = pf.GreaterThan(decimal.Zero)
	p.PFPercent = pf

	expenses, err := optionalAmount("monthly expenses", m.Value(FieldExpenses))
	if err != nil {
		return p, err
	}
	if !expenses.Equal(m.base.MonthlyExpenses()) {
		p.Expenses = nil
		if !expenses.IsZero() {
			p.Expenses = []domain.ExpenseItem{{Name: "Monthly expenses", Monthly: expenses}}
		}
	}

	p.SIP = domain.SIPParameters{}
	if p.SIP.MonthlyContribution, err = optionalAmount("SIP monthly", m.Value(FieldSIPMonthly)); err != nil {
		return p, err
	}
	if p.SIP.MonthlyContribution.GreaterThan(decimal.Zero) {
		if p.SIP.AnnualReturnPct, err = optionalPercent("SIP return", m.Value(FieldSIPReturn)); err != nil {
			return p, err
		}
		if p.SIP.DurationYears, err = config.ParseYears("SIP years", m.Value(FieldSIPYears)); err != nil {
			return p, err
		}
	}

	if err := config.NewInputParser().ValidateProfile(&p); err != nil {
		return p, err
	}
	return p, nil
}

func optionalAmount(field, input string) (decimal.Decimal, error) {
	if strings.TrimSpace(input) == "" {
		return decimal.Zero, nil
	}
	return config.ParseAmount(field, input)
}

func optionalPercent(field, input string) (decimal.Decimal, error) {
	if strings.TrimSpace(input) == "" {
		return decimal.Zero, nil
	}
	return config.ParsePercent(field, input)
}

// Update handles messages for the form scene
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, nextFieldKey):
			return m, m.focus(m.focused + 1)
		case key.Matches(msg, prevFieldKey):
			return m, m.focus(m.focused - 1)
		case key.Matches(msg, submitKey):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// focus moves focus to field i, wrapping at either end
func (m *FormModel) focus(i int) tea.Cmd {
	i = (i + fieldCount) % fieldCount
	m.inputs[m.focused].Blur()
	m.focused = i
	return m.inputs[i].Focus()
}

func (m *FormModel) submit() tea.Cmd {
	p, err := m.Profile()
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	return func() tea.Msg {
		return tuimsg.ProfileSubmittedMsg{Profile: p}
	}
}

// View renders the form scene
func (m *FormModel) View() string {
	var rows []string
	rows = append(rows, tuistyles.TitleStyle.Render("Your details"), "")
	for i, ti := range m.inputs {
		labelStyle := tuistyles.FieldLabelStyle
		if i == m.focused {
			labelStyle = tuistyles.FocusedFieldLabelStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(fieldLabels[i]), ti.View()))
	}

	rows = append(rows, "")
	if m.err != nil {
		rows = append(rows, tuistyles.ErrorStyle.Render(m.err.Error()), "")
	}
	rows = append(rows, tuistyles.SubtitleStyle.Render("Blank optional fields count as zero. SIP years are needed when a SIP amount is set."))

	return tuistyles.BorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
