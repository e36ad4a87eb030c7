package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/intax/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.formModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ProfileLoadedMsg:
		m.profile = msg.Profile
		if msg.Profile != nil {
			m.formModel.SetProfile(*msg.Profile)
		}
		return m, nil

	case tuimsg.ProfileSubmittedMsg:
		m.loading = true
		m.loadingMessage = "Calculating..."
		return m, calculateCmd(m.calcEngine, msg.Profile)

	case tuimsg.BackToFormMsg:
		return m, navigate(SceneForm)

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.resultsModel.SetReport(msg.Report)
		return m, navigate(SceneResults)
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// Letter keys are typed into the form, so shortcuts apply elsewhere only
	if m.currentScene != SceneForm {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			if m.currentScene != SceneHelp {
				return m, navigate(SceneHelp)
			}
		case "esc":
			if m.currentScene == SceneHelp {
				return m, navigate(m.previousScene)
			}
		}
	} else if msg.String() == "f1" {
		return m, navigate(SceneHelp)
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneForm:
		m.formModel, cmd = m.formModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
