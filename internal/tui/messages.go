package tui

import (
	"github.com/rgehrsitz/intax/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneResults
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ProfileLoadedMsg signals a profile file has been read
type ProfileLoadedMsg struct {
	Profile *domain.Profile
}

// CalculationCompleteMsg signals a projection has finished
type CalculationCompleteMsg struct {
	Report *domain.Report
	Err    error
}
