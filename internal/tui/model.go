package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Profile source; empty when the form starts blank
	profilePath string
	profile     *domain.Profile

	calcEngine *calculation.CalculationEngine

	formModel    *scenes.FormModel
	resultsModel *scenes.ResultsModel

	err error

	loading        bool
	loadingMessage string
}

// NewModel creates a new application model. A non-empty profilePath is
// loaded on start and pre-fills the form.
func NewModel(profilePath string) Model {
	return Model{
		currentScene: SceneForm,
		profilePath:  profilePath,
		calcEngine:   calculation.NewCalculationEngine(),
		formModel:    scenes.NewFormModel(),
		resultsModel: scenes.NewResultsModel(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.profilePath == "" {
		return nil
	}
	return loadProfileCmd(m.profilePath)
}

// CurrentScene returns the scene on display
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// Form returns the input form scene
func (m Model) Form() *scenes.FormModel {
	return m.formModel
}

// Results returns the results scene
func (m Model) Results() *scenes.ResultsModel {
	return m.resultsModel
}

// Err returns the error on display, if any
func (m Model) Err() error {
	return m.err
}

// loadProfileCmd returns a command that loads a profile file
func loadProfileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{Profile: profile}
	}
}

// calculateCmd returns a command that projects a profile
func calculateCmd(engine *calculation.CalculationEngine, profile domain.Profile) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.ProjectYears(profile)
		return CalculationCompleteMsg{Report: report, Err: err}
	}
}

func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Details"
	case SceneResults:
		return "Results"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
