package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/campus-login/internal/service"
	"github.com/MKhiriev/campus-login/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the about window
// 3) handles NavigateTo messages
// 4) feeds login progress from the status channel to the login page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	status    <-chan service.StatusUpdate
	buildInfo models.AppBuildInfo

	showAbout bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, status <-chan service.StatusUpdate, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		status:    status,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	cmds = append(cmds, waitForStatus(r.status))
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.String() == "ctrl+c":
			return r, tea.Quit
		case keyMatches(key, keys.about):
			r.showAbout = !r.showAbout
			return r, nil
		case key.String() == "esc" && r.showAbout:
			r.showAbout = false
			return r, nil
		}

		if r.showAbout {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showAbout = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// Progress always goes to the login page, whichever page is shown.
	if update, ok := msg.(statusMsg); ok {
		var cmd tea.Cmd
		if login, exists := r.pages[pageLogin]; exists {
			r.pages[pageLogin], cmd = login.Update(update)
			if r.current == login {
				r.current = r.pages[pageLogin]
			}
		}
		return r, tea.Batch(cmd, waitForStatus(r.status))
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showAbout {
		return renderAboutWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("CAMPUS LOGIN", "", "")
	}
	return r.current.View()
}

// waitForStatus blocks on the next progress update. A nil channel yields
// no command.
func waitForStatus(ch <-chan service.StatusUpdate) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return nil
		}
		return statusMsg(update)
	}
}
