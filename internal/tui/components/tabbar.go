package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

// AuthTabs are the two tabs of the auth view, in display order.
var AuthTabs = []string{"Sign Up", "Log In"}

// RenderAuthTabs renders the signup/login tab header.
func RenderAuthTabs(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	out := " "
	for i, name := range AuthTabs {
		if i > 0 {
			out += "   "
		}
		if i == activeIdx {
			out += activeStyle.Render(name)
		} else {
			out += inactiveStyle.Render(name)
		}
	}
	return out
}

// RenderStatusBar renders the bottom status bar with key hints on the
// left and optional context on the right.
func RenderStatusBar(width int, hints, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	padding := width - lipgloss.Width(hints) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := hints
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
