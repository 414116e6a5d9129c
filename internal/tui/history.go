package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/campus-login/internal/service"
	"github.com/MKhiriev/campus-login/models"
)

const historyLimit = 10

// HistoryModel lists the most recent login attempts, newest first.
type HistoryModel struct {
	ctx       context.Context
	autoLogin service.AutoLoginService

	attempts []models.LoginAttempt
	loading  bool
	errMsg   string
}

func NewHistoryModel(ctx context.Context, autoLogin service.AutoLoginService) *HistoryModel {
	return &HistoryModel{ctx: ctx, autoLogin: autoLogin}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.attempts = msg.attempts
		return m, nil

	case tea.KeyMsg:
		switch {
		case keyMatches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		case keyMatches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.cmdLoad()
		}
	}
	return m, nil
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	case len(m.attempts) == 0:
		b.WriteString("No login attempts yet")
	default:
		b.WriteString(fmt.Sprintf("%-19s │ %-11s │ %-17s │ %-4s │ %s\n", "Time", "Mode", "Outcome", "HTTP", "Message"))
		b.WriteString("────────────────────┼─────────────┼───────────────────┼──────┼──────────────\n")
		for _, a := range m.attempts {
			httpStatus := "-"
			if a.HTTPStatus != 0 {
				httpStatus = fmt.Sprint(a.HTTPStatus)
			}
			b.WriteString(fmt.Sprintf("%-19s │ %-11s │ %-17s │ %-4s │ %s\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				a.Mode,
				a.Outcome,
				httpStatus,
				fitText(a.Message, 40),
			))
		}
	}

	return renderPage("LOGIN HISTORY", strings.TrimRight(b.String(), "\n"), "esc: back │ f5: refresh")
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	autoLogin := m.autoLogin

	return func() tea.Msg {
		attempts, err := autoLogin.RecentAttempts(ctx, historyLimit)
		return historyLoadedMsg{attempts: attempts, err: err}
	}
}
