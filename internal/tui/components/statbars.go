package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/cli"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/stats"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

// CategoryBars renders one labeled bar per category, scaled against the
// largest category total so the biggest spender always fills the width.
func CategoryBars(totals []stats.CategoryTotal, width int) string {
	t := theme.Active

	if len(totals) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("Add a few expenses to see a visual breakdown here.")
	}

	max := stats.MaxTotal(totals)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, ct := range totals {
		amount := cli.FormatRupees(ct.Total)
		pad := width - lipgloss.Width(ct.Category.String()) - lipgloss.Width(amount)
		if pad < 1 {
			pad = 1
		}
		b.WriteString(labelStyle.Render(ct.Category.String()))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(valueStyle.Render(amount))
		b.WriteString("\n")

		pct := 0
		if max > 0 {
			pct = int(math.Round(ct.Total / max * 100))
		}
		if pct < 0 {
			pct = 0
		}
		filled := pct * width / 100
		if filled > width {
			filled = width
		}
		barStyle := lipgloss.NewStyle().Foreground(theme.CategoryColor(ct.Category))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(trackStyle.Render(strings.Repeat("░", width-filled)))
		if i < len(totals)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
