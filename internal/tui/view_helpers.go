package tui

import (
	"strings"
)

const (
	pageIndent   = "  "
	dividerWidth = 54
	globalKeys   = "f1: about │ ctrl+c: quit"
)

var divider = strings.Repeat("─", dividerWidth)

// renderPage lays out a page as title, divider, indented body, divider and
// the key hints. The global hints are always shown last.
func renderPage(title, body, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n")
	writeIndented(&b, divider)
	b.WriteString("\n")

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	for _, line := range strings.Split(body, "\n") {
		writeIndented(&b, line)
	}

	b.WriteString("\n")
	writeIndented(&b, divider)
	if strings.TrimSpace(hotKeys) != "" {
		writeIndented(&b, helpStyle.Render(hotKeys))
	}
	b.WriteString(pageIndent + helpStyle.Render(globalKeys))

	return b.String()
}

func writeIndented(b *strings.Builder, line string) {
	b.WriteString(pageIndent)
	b.WriteString(line)
	b.WriteString("\n")
}

// renderStatus colours the engine status line; empty text renders nothing.
func renderStatus(text string, isError bool) string {
	switch {
	case text == "":
		return ""
	case isError:
		return errorStyle.Render(text)
	default:
		return okStyle.Render(text)
	}
}

// fitText cuts v to max runes, marking the cut with "..." when there is room.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
