package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	enable  key.Binding
	disable key.Binding
	history key.Binding
	refresh key.Binding
	about   key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	enable:  key.NewBinding(key.WithKeys("f2")),
	disable: key.NewBinding(key.WithKeys("f3")),
	history: key.NewBinding(key.WithKeys("f4")),
	refresh: key.NewBinding(key.WithKeys("f5")),
	about:   key.NewBinding(key.WithKeys("f1")),
}

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
