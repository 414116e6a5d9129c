// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/campus-login/internal/app"
	"github.com/MKhiriev/campus-login/internal/service"
	"github.com/MKhiriev/campus-login/models"
)

// Actions of the login page, in display order.
const (
	actionTestLogin = iota
	actionEnableAuto
	actionDisableAuto
)

var actionLabels = []string{"Save and test login", "Enable auto login", "Disable auto login"}

// LoginModel is the main page: username and password inputs, the three
// actions and a status line fed by the running attempt.
//
// Focus runs over the inputs first and then over the action buttons.
// Long-running work is dispatched as commands, so the UI stays responsive
// while the login engine waits for the network.
type LoginModel struct {
	ctx       context.Context
	autoLogin service.AutoLoginService

	inputs []textinput.Model
	focus  int
	busy   bool

	status    string
	statusErr bool

	autoKnown   bool
	autoEnabled bool
}

// NewLoginModel creates a [LoginModel] pre-filled with the stored credentials.
// The password field uses masked echo.
func NewLoginModel(ctx context.Context, autoLogin service.AutoLoginService) *LoginModel {
	creds := autoLogin.Credentials()

	userInput := textinput.New()
	userInput.Placeholder = "username"
	userInput.CharLimit = 64
	userInput.Width = 40
	userInput.SetValue(creds.Username)
	userInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.SetValue(creds.Password)

	return &LoginModel{
		ctx:       ctx,
		autoLogin: autoLogin,
		inputs:    []textinput.Model{userInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor blink and queries the
// auto login registration.
func (m *LoginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdCheckAutoStart())
}

// Update implements [tea.Model].
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsError
		return m, nil

	case loginDoneMsg:
		m.busy = false
		if msg.saveErr != nil {
			m.status = app.MsgCredentialsNotSaved + ": " + msg.saveErr.Error()
			m.statusErr = true
		}
		return m, nil

	case autoStartDoneMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.status = humanizeAutoStartError(msg.err)
			m.statusErr = true
		case msg.enable:
			m.status = app.MsgAutoLoginEnabled
			m.statusErr = false
		default:
			m.status = app.MsgAutoLoginDisabled
			m.statusErr = false
		}
		return m, m.cmdCheckAutoStart()

	case autoStatusMsg:
		m.autoKnown = true
		m.autoEnabled = msg.enabled
		return m, nil

	case tea.KeyMsg:
		switch {
		case keyMatches(msg, keys.tab), keyMatches(msg, keys.down):
			m.setFocus(m.focus + 1)
			return m, nil
		case keyMatches(msg, keys.backtab), keyMatches(msg, keys.up):
			m.setFocus(m.focus - 1)
			return m, nil
		case keyMatches(msg, keys.enable):
			return m, m.run(actionEnableAuto)
		case keyMatches(msg, keys.disable):
			return m, m.run(actionDisableAuto)
		case keyMatches(msg, keys.history):
			return m, func() tea.Msg { return NavigateTo{Page: pageHistory} }
		case keyMatches(msg, keys.enter):
			if m.focus < len(m.inputs) {
				return m, m.run(actionTestLogin)
			}
			return m, m.run(m.focus - len(m.inputs))
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n\n")

	for i, label := range actionLabels {
		button := "[ " + label + " ]"
		if m.focus == len(m.inputs)+i {
			button = focusedStyle.Render(button)
		}
		b.WriteString(button)
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	b.WriteString("Auto login: ")
	b.WriteString(m.autoLabel())
	b.WriteString("\n")

	if m.busy {
		b.WriteString("Working...\n")
	}
	if m.status != "" {
		b.WriteString("Status: ")
		b.WriteString(renderStatus(m.status, m.statusErr))
		b.WriteString("\n")
	}

	return renderPage(
		"CAMPUS NETWORK LOGIN",
		strings.TrimRight(b.String(), "\n"),
		"tab: next │ enter: run │ f2: enable auto │ f3: disable auto │ f4: history",
	)
}

func (m *LoginModel) autoLabel() string {
	switch {
	case !m.autoKnown:
		return "checking..."
	case m.autoEnabled:
		return okStyle.Render("enabled")
	default:
		return "disabled"
	}
}

// run starts action unless another one is still in progress.
func (m *LoginModel) run(action int) tea.Cmd {
	if m.busy {
		return nil
	}

	creds := m.credentials()
	m.busy = true
	m.status = ""
	m.statusErr = false

	switch action {
	case actionEnableAuto:
		return m.cmdAutoStart(creds, true)
	case actionDisableAuto:
		return m.cmdAutoStart(creds, false)
	default:
		return m.cmdLogin(creds)
	}
}

func (m *LoginModel) credentials() models.Credentials {
	return models.Credentials{
		Username: m.inputs[0].Value(),
		Password: m.inputs[1].Value(),
	}
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	autoLogin := m.autoLogin

	return func() tea.Msg {
		if err := autoLogin.SaveCredentials(creds); err != nil {
			return loginDoneMsg{saveErr: err}
		}
		return loginDoneMsg{outcome: autoLogin.Login(ctx, creds, models.ModeInteractive)}
	}
}

func (m *LoginModel) cmdAutoStart(creds models.Credentials, enable bool) tea.Cmd {
	autoLogin := m.autoLogin

	return func() tea.Msg {
		if enable {
			return autoStartDoneMsg{enable: true, err: autoLogin.EnableAutoStart(creds)}
		}
		return autoStartDoneMsg{enable: false, err: autoLogin.DisableAutoStart(creds)}
	}
}

func (m *LoginModel) cmdCheckAutoStart() tea.Cmd {
	autoLogin := m.autoLogin

	return func() tea.Msg {
		return autoStatusMsg{enabled: autoLogin.AutoStartEnabled()}
	}
}

func (m *LoginModel) setFocus(i int) {
	total := len(m.inputs) + len(actionLabels)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (i%total + total) % total
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}
