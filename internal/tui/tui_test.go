package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/tui/scenes"
	"github.com/rgehrsitz/intax/internal/tui/tuimsg"
)

// follows reports whether the commands returned for msg should be run.
// Typing and focus changes return cursor blink commands that wait on a timer.
func follows(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return true
	}
	switch k.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeyF1:
		return true
	}
	return false
}

// send applies msg and then every model message its commands produce
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		updated, cmd := m.Update(next)
		m = updated.(Model)
		if cmd == nil || !follows(next) {
			continue
		}
		// Only follow messages the model itself produces
		switch out := cmd().(type) {
		case NavigateMsg, CalculationCompleteMsg, ProfileLoadedMsg, ErrorMsg,
			tuimsg.ProfileSubmittedMsg, tuimsg.BackToFormMsg:
			queue = append(queue, out)
		}
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleProfile() *domain.Profile {
	return &domain.Profile{
		Name:          "Asha",
		AnnualSalary:  decimal.NewFromInt(1200000),
		ContributesPF: true,
		Deductions: domain.Deductions{
			Section80C: decimal.NewFromInt(150000),
			Section80D: decimal.NewFromInt(25000),
		},
		Expenses: []domain.ExpenseItem{
			{Name: "rent", Monthly: decimal.NewFromInt(20000)},
			{Name: "food", Monthly: decimal.NewFromInt(10000)},
		},
		SIP: domain.SIPParameters{
			MonthlyContribution: decimal.NewFromInt(5000),
			AnnualReturnPct:     decimal.NewFromInt(12),
			DurationYears:       10,
		},
		SalaryHikePct: decimal.NewFromInt(10),
		Years:         2,
	}
}

func TestNewModel(t *testing.T) {
	m := NewModel("")
	assert.Equal(t, SceneForm, m.CurrentScene())
	assert.Nil(t, m.Init())
	assert.NotNil(t, NewModel("profile.yaml").Init())
	assert.Contains(t, m.View(), "Annual salary")
}

func TestProfileLoadedPrefillsForm(t *testing.T) {
	m := send(t, NewModel(""), ProfileLoadedMsg{Profile: sampleProfile()})

	form := m.Form()
	assert.Equal(t, "1200000", form.Value(scenes.FieldSalary))
	assert.Equal(t, "150000", form.Value(scenes.Field80C))
	assert.Equal(t, "12", form.Value(scenes.FieldPFPercent))
	assert.Equal(t, "30000", form.Value(scenes.FieldExpenses))
	assert.Equal(t, "10", form.Value(scenes.FieldSIPYears))
	assert.Contains(t, m.View(), "Asha")
}

func TestLoadProfileError(t *testing.T) {
	m := NewModel("does-not-exist.yaml")
	m = send(t, m, m.Init()())
	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "Error:")

	// any key dismisses
	m = send(t, m, keyMsg("x"))
	assert.NoError(t, m.Err())
}

func TestFormNavigation(t *testing.T) {
	m := NewModel("")
	m = send(t, m, keyMsg("tab"))
	assert.Equal(t, scenes.Field80C, m.Form().Focused())
	m = send(t, m, keyMsg("shift+tab"))
	m = send(t, m, keyMsg("shift+tab"))
	assert.Equal(t, scenes.FieldSIPYears, m.Form().Focused())
}

func TestTypingIntoForm(t *testing.T) {
	m := NewModel("")
	for _, r := range "900000q" {
		m = send(t, m, keyMsg(string(r)))
	}
	// q is text in the form, not quit
	assert.Equal(t, "900000q", m.Form().Value(scenes.FieldSalary))
}

func TestSubmitShowsResults(t *testing.T) {
	m := send(t, NewModel(""), ProfileLoadedMsg{Profile: sampleProfile()})
	m = send(t, m, keyMsg("enter"))

	require.NoError(t, m.Err())
	assert.Equal(t, SceneResults, m.CurrentScene())
	report := m.Results().Report()
	require.NotNil(t, report)
	require.Len(t, report.Years, 2)
	// expenses kept as their original line items
	assert.Len(t, report.Profile.Expenses, 2)

	view := m.View()
	assert.Contains(t, view, "Year 1 of 2")
	assert.Contains(t, view, "₹1,24,800.00")
	assert.Contains(t, view, "SIP Corpus")

	m = send(t, m, keyMsg("right"))
	assert.Equal(t, 1, m.Results().SelectedYear())
	m = send(t, m, keyMsg("right"))
	assert.Equal(t, 1, m.Results().SelectedYear())
	m = send(t, m, keyMsg("left"))
	assert.Equal(t, 0, m.Results().SelectedYear())

	m = send(t, m, keyMsg("esc"))
	assert.Equal(t, SceneForm, m.CurrentScene())
}

func TestSubmitInvalidStaysOnForm(t *testing.T) {
	m := NewModel("")
	m.Form().SetValue(scenes.FieldSalary, "lots")
	m = send(t, m, keyMsg("enter"))

	assert.Equal(t, SceneForm, m.CurrentScene())
	require.Error(t, m.Form().Err())
	assert.Contains(t, m.View(), "not a number")
}

func TestFormProfile(t *testing.T) {
	form := scenes.NewFormModel()
	form.SetValue(scenes.FieldSalary, "₹8,00,000")
	form.SetValue(scenes.FieldPFPercent, "0")
	form.SetValue(scenes.FieldExpenses, "15000")

	p, err := form.Profile()
	require.NoError(t, err)
	assert.Equal(t, "800000", p.AnnualSalary.String())
	assert.False(t, p.ContributesPF)
	require.Len(t, p.Expenses, 1)
	assert.True(t, p.SIP.IsZero())

	form.SetValue(scenes.FieldSIPMonthly, "2000")
	_, err = form.Profile()
	require.Error(t, err, "SIP years are required with a SIP amount")
}

func TestHelpScene(t *testing.T) {
	m := send(t, NewModel(""), tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, SceneHelp, m.CurrentScene())
	view := m.View()
	assert.Contains(t, view, "Quit (outside the form)")
	assert.Contains(t, view, "Section 87A")
	assert.Contains(t, view, "4% cess")

	m = send(t, m, keyMsg("esc"))
	assert.Equal(t, SceneForm, m.CurrentScene())
}

func TestWindowResize(t *testing.T) {
	m := send(t, NewModel(""), tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Equal(t, 140, m.width)
}
