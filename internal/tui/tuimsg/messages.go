// Package tuimsg defines messages passed from scenes up to the root model.
package tuimsg

import (
	"github.com/rgehrsitz/intax/internal/domain"
)

// ProfileSubmittedMsg carries a validated profile from the input form
type ProfileSubmittedMsg struct {
	Profile domain.Profile
}

// BackToFormMsg asks the root model to return to the input form
type BackToFormMsg struct{}
