package tui

import (
	"github.com/MKhiriev/campus-login/internal/service"
	"github.com/MKhiriev/campus-login/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// statusMsg is one progress update of the running login attempt.
type statusMsg service.StatusUpdate

type loginDoneMsg struct {
	outcome models.Outcome
	saveErr error
}

type autoStartDoneMsg struct {
	enable bool
	err    error
}

type autoStatusMsg struct {
	enabled bool
}

type historyLoadedMsg struct {
	attempts []models.LoginAttempt
	err      error
}
