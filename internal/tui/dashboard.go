package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/cli"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/config"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/model"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/components"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

func (a App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// A modal form intercepts all keys; esc cancels it.
	if a.modal != nil {
		if key == "esc" {
			a.modal = nil
			return a, nil
		}
		return a.forwardToModal(msg)
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "a":
		return a.openModal(modalExpense)
	case "b":
		return a.openModal(modalBudget)
	case "g":
		return a.openModal(modalAI)
	case "j", "down":
		if a.cursor < len(a.session.Expenses())-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "d", "x":
		return a.deleteSelected()
	case "l":
		return a.logout()
	}

	return a, nil
}

// displayExpenses returns the expense list in display order, most
// recent insertion first.
func (a App) displayExpenses() []model.Expense {
	expenses := a.session.Expenses()
	for i, j := 0, len(expenses)-1; i < j; i, j = i+1, j-1 {
		expenses[i], expenses[j] = expenses[j], expenses[i]
	}
	return expenses
}

func (a App) deleteSelected() (tea.Model, tea.Cmd) {
	rows := a.displayExpenses()
	if len(rows) == 0 || a.cursor >= len(rows) {
		return a, nil
	}

	a.session.DeleteExpense(rows[a.cursor].ID)
	a.dashMsg = successMessage("Expense deleted.")
	a.refresh(dirtyFor(mutDeleteExpense))
	return a, nil
}

func (a App) logout() (tea.Model, tea.Cmd) {
	a.session.LogOut()

	*a.signupVals = signupValues{}
	*a.loginVals = loginValues{}
	*a.expenseVals = expenseValues{}
	*a.budgetVals = budgetValues{}
	a.signupForm = newSignupForm(a.signupVals)
	a.loginForm = newLoginForm(a.loginVals)
	a.modal = nil
	a.authMsg = message{}
	a.dashMsg = message{}
	a.showHelp = false
	a.cursor = 0

	// Return to whichever auth tab was last shown.
	if a.cfg.General.AuthTab == "login" {
		a.authTab = tabLogin
	} else {
		a.authTab = tabSignup
	}
	_ = config.Save(a.cfg)

	a.view = viewAuth
	a.refresh(dirtyFor(mutLogout))
	a.resizeForms()
	return a, a.activeAuthForm().Init()
}

func (a App) viewDashboard() string {
	cw := a.contentWidth()

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString(a.renderSummary(cw))
	b.WriteString("\n")
	b.WriteString(a.renderProgress(cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	left := lipgloss.JoinVertical(lipgloss.Left,
		components.ContentCard("Expenses", a.renderTable(components.CardInnerWidth(halves[0])), halves[0]),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		components.ContentCard("Spending Pie", a.renderPie(), halves[1]),
		components.ContentCard("Category Split",
			components.CategoryBars(a.totals, components.CardInnerWidth(halves[1])), halves[1]),
	)
	b.WriteString(components.CardRow([]string{left, right}))
	b.WriteString("\n")
	b.WriteString(renderMessage(a.dashMsg))
	b.WriteString("\n")

	if a.modal != nil {
		b.WriteString("\n")
		b.WriteString(a.modal.form.View())
		b.WriteString("\n")
	}

	if a.showHelp {
		return a.viewDashboardHelp()
	}

	hints := " [a]dd  [g]uess fill  [b]udget  [j/k] rows  [d]elete  [l]ogout  [?] help  [q]uit"
	body := b.String()
	bodyH := lipgloss.Height(body)
	if pad := a.height - bodyH - 1; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	body += components.RenderStatusBar(a.width, hints, "")
	return body
}

func (a App) renderHeader() string {
	t := theme.Active
	user, ok := a.session.User()
	if !ok {
		return "\n\n"
	}

	avatarStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	collegeStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return " " + avatarStyle.Render(user.Initial()) + " " +
		nameStyle.Render(user.Name) + "  " +
		collegeStyle.Render(user.College) + "\n\n"
}

func (a App) renderSummary(cw int) string {
	s := a.summary
	cards := []struct{ Label, Value string }{
		{"Monthly Budget", cli.FormatRupees(s.Budget)},
		{"Spent", cli.FormatRupees(s.Spent)},
		{"Remaining", cli.FormatRupees(s.Remaining)},
	}
	return components.MetricCardRow(cards, cw)
}

func (a App) renderProgress(cw int) string {
	t := theme.Active
	s := a.summary

	innerW := components.CardInnerWidth(cw)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	alertStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var body strings.Builder
	body.WriteString(components.BudgetBar(s.BarPercent, innerW))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render(s.Label))
	body.WriteString("\n")
	// Always emit the alert line so the card height stays fixed and the
	// pie origin below it never moves.
	body.WriteString(alertStyle.Render(s.OverMessage))

	return components.ContentCard("Monthly Budget", body.String(), cw)
}

func (a App) renderTable(innerW int) string {
	t := theme.Active
	rows := a.displayExpenses()

	if len(rows) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No expenses yet. Start by logging your first chai or bus ride.")
	}

	titleW := innerW - 34
	if titleW < 8 {
		titleW = 8
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-*s %-7s %9s  %-10s", titleW, "Title", "Cat", "Amount", "Date")))
	b.WriteString("\n")

	for i, e := range rows {
		pill := lipgloss.NewStyle().
			Foreground(theme.CategoryColor(e.Category)).
			Render(fmt.Sprintf("%-7s", e.Category))
		line := fmt.Sprintf("%-*s ", titleW, truncate(e.Title, titleW)) +
			pill +
			amtStyle.Render(fmt.Sprintf("%9s", cli.FormatRupees(e.Amount))) +
			rowStyle.Render("  "+e.Date)

		if i == a.cursor {
			b.WriteString(selStyle.Render("▸ "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a App) renderPie() string {
	t := theme.Active

	if len(a.segments) == 0 {
		blank := strings.Repeat(strings.Repeat(" ", pieCanvasW)+"\n", pieCanvasH)
		return blank + lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("Nothing to chart yet.")
	}

	tooltipStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	tooltip := a.tooltip
	if tooltip == "" {
		tooltip = lipgloss.NewStyle().Foreground(t.TextDim).
			Render("Hover a slice for details.")
	} else {
		tooltip = tooltipStyle.Render(tooltip)
	}

	return components.PieCanvas(a.segments, pieCanvasW, pieCanvasH) + "\n" +
		components.PieLegend(a.segments) + "\n" + tooltip
}

func (a App) viewDashboardHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"a", "Add an expense"},
		{"g", "Guess fill from a description"},
		{"b", "Set the monthly budget"},
		{"j k", "Move the table cursor"},
		{"d / x", "Delete the selected expense"},
		{"l", "Log out"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(descStyle.Render("Mouse over the pie chart for slice details."))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
