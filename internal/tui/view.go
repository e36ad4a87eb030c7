package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("⠋ " + m.loadingMessage))
	}
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err)))
	}

	var content string
	switch m.currentScene {
	case SceneForm:
		content = m.formModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("INTAX - Income Tax & In-Hand Planner")
	crumb := m.currentScene.String()
	if m.profile != nil && m.profile.Name != "" {
		crumb = fmt.Sprintf("%s / %s", crumb, m.profile.Name)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(crumb))
}

func (m Model) renderStatusBar() string {
	var shortcuts []string
	switch m.currentScene {
	case SceneForm:
		shortcuts = []string{
			formatShortcut("tab/shift+tab", "move"),
			formatShortcut("enter", "calculate"),
			formatShortcut("f1", "help"),
			formatShortcut("ctrl+c", "quit"),
		}
	case SceneResults:
		shortcuts = []string{
			formatShortcut("←/→", "year"),
			formatShortcut("esc", "edit"),
			formatShortcut("?", "help"),
			formatShortcut("q", "quit"),
		}
	default:
		shortcuts = []string{
			formatShortcut("esc", "back"),
			formatShortcut("q", "quit"),
		}
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func renderHelp() string {
	helpText := `INTAX - Income Tax & In-Hand Planner

DETAILS FORM:
  tab / down       Next field
  shift+tab / up   Previous field
  enter            Calculate
  f1               Show this help

RESULTS:
  left / right     Previous / next year
  esc              Back to the form
  ?                Show this help

ANYWHERE:
  ctrl+c           Quit
  q                Quit (outside the form)`

	regimeNote := `Old regime applies 80C (max ₹1,50,000) and 80D (max ₹50,000).
The new regime ignores deductions. Both add 4% cess and the
Section 87A rebate zeroes tax at or below the regime threshold.`

	return BorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, helpText, "", InfoStyle.Render(regimeNote)))
}
