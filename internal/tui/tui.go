package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/service"
	"github.com/MKhiriev/campus-login/models"
)

// Page names used with NavigateTo.
const (
	pageLogin   = "login"
	pageHistory = "history"
)

type TUI struct {
	autoLogin service.AutoLoginService
	status    <-chan service.StatusUpdate
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(autoLogin service.AutoLoginService, status *service.StatusFeed, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	var updates <-chan service.StatusUpdate
	if status != nil {
		updates = status.Updates()
	}
	return &TUI{
		autoLogin: autoLogin,
		status:    updates,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the interactive window until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageLogin:   NewLoginModel(ctx, t.autoLogin),
		pageHistory: NewHistoryModel(ctx, t.autoLogin),
	}

	root := NewRootModel(pages, pageLogin, t.status, t.buildInfo)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}
	return nil
}
