package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

// BudgetBar renders the bounded budget progress bar. percent is expected
// to already be clamped to 0-100; out-of-range values are clamped again
// so a rendering bug can never overflow the bar.
func BudgetBar(percent, width int) string {
	t := theme.Active
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100

	var barColor lipgloss.Color
	switch {
	case percent >= 100:
		barColor = t.Red
	case percent >= 75:
		barColor = t.Orange
	default:
		barColor = t.Accent
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}
