// Package tui provides the interactive Bubble Tea dashboard for the
// expense tracker.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/config"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/pie"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/session"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/stats"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/components"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

// view is the top-level screen: the auth gate or the dashboard.
type view int

const (
	viewAuth view = iota
	viewDashboard
)

// authTab selects between the signup and login forms. The indices match
// components.AuthTabs.
const (
	tabSignup = 0
	tabLogin  = 1
)

// panel is a bitmask of dashboard panels whose derived state must be
// recomputed after a mutation.
type panel uint8

const (
	panelHeader panel = 1 << iota
	panelSummary
	panelTable
	panelStats
	panelPie

	panelAll = panelHeader | panelSummary | panelTable | panelStats | panelPie
)

// mutation enumerates the state changes that trigger a refresh.
type mutation int

const (
	mutEnterDashboard mutation = iota
	mutAddExpense
	mutDeleteExpense
	mutSetBudget
	mutLogout
)

// dirtyFor is the render-granularity contract: which panels each
// mutation invalidates. A budget change leaves the table, stats, and pie
// untouched; expense changes leave only the header untouched.
func dirtyFor(m mutation) panel {
	switch m {
	case mutAddExpense, mutDeleteExpense:
		return panelSummary | panelTable | panelStats | panelPie
	case mutSetBudget:
		return panelSummary
	default:
		return panelAll
	}
}

// Cosmetic delays between a successful auth submit and the dashboard,
// long enough for the success message to register.
const (
	signupRedirectDelay = 600 * time.Millisecond
	loginRedirectDelay  = 500 * time.Millisecond
)

// enterDashboardMsg fires when the post-auth redirect delay elapses.
type enterDashboardMsg struct{}

// message is an inline form feedback line.
type message struct {
	text    string
	isError bool
}

func errorMessage(err error) message {
	return message{text: err.Error(), isError: true}
}

func successMessage(text string) message {
	return message{text: text}
}

// App is the root Bubble Tea model.
type App struct {
	session *session.Session
	cfg     config.Config

	width  int
	height int

	view        view
	authTab     int
	redirecting bool
	showHelp    bool

	// spin animates the post-auth redirect wait.
	spin spinner.Model

	// Auth forms. The value structs are heap-allocated so the huh forms
	// keep writing into the same memory across model copies.
	signupVals *signupValues
	loginVals  *loginValues
	signupForm authForm
	loginForm  authForm
	authMsg    message

	// Dashboard modal forms; at most one is active at a time.
	expenseVals *expenseValues
	budgetVals  *budgetValues
	aiVals      *aiValues
	modal       *modalForm
	dashMsg     message

	// Expense table cursor, in display (most recent first) order.
	cursor int

	// Derived state caches, refreshed per the dirtyFor contract.
	summary  stats.Summary
	totals   []stats.CategoryTotal
	segments []pie.Segment
	tooltip  string
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 110

	headerHeight   = 2
	summaryHeight  = 4
	progressHeight = 6

	pieCanvasW = 24
	pieCanvasH = 11
)

// NewApp creates the root model, starting at the auth view on the
// configured tab.
func NewApp(cfg config.Config) App {
	a := App{
		session:     session.New(),
		cfg:         cfg,
		signupVals:  &signupValues{},
		loginVals:   &loginValues{},
		expenseVals: &expenseValues{},
		budgetVals:  &budgetValues{},
		aiVals:      &aiValues{},
	}
	if cfg.General.AuthTab == "login" {
		a.authTab = tabLogin
	}
	a.spin = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Active.Accent)),
	)
	a.signupForm = newSignupForm(a.signupVals)
	a.loginForm = newLoginForm(a.loginVals)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseAllMotion, // hover tooltips need motion events
		a.activeAuthForm().Init(),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeForms()
		return a, nil

	case enterDashboardMsg:
		a.redirecting = false
		a.authMsg = message{}
		a.view = viewDashboard
		a.cursor = 0
		a.refresh(dirtyFor(mutEnterDashboard))
		return a, nil

	case spinner.TickMsg:
		if a.redirecting {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		if a.view == viewDashboard && a.modal == nil && !a.showHelp {
			a.updateHover(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.view == viewAuth {
			return a.updateAuth(msg)
		}
		return a.updateDashboard(msg)
	}

	// Forward everything else (cursor blinks, form ticks) to whichever
	// form is active.
	if a.view == viewAuth && !a.redirecting {
		return a.forwardToAuthForm(msg)
	}
	if a.modal != nil {
		return a.forwardToModal(msg)
	}
	return a, nil
}

// refresh recomputes the derived-state caches behind the given panels.
func (a *App) refresh(p panel) {
	user, _ := a.session.User()
	expenses := a.session.Expenses()

	if p&panelSummary != 0 {
		a.summary = stats.Summarize(user.MonthlyBudget, expenses)
	}
	if p&(panelStats|panelPie) != 0 {
		a.totals = stats.CategoryTotals(expenses)
	}
	if p&panelPie != 0 {
		cx, cy, r := components.CanvasGeometry(pieCanvasW, pieCanvasH)
		a.segments = pie.BuildSegments(a.totals, cx, cy, r)
		a.tooltip = ""
	}
	if p&panelTable != 0 {
		if a.cursor >= len(expenses) {
			a.cursor = len(expenses) - 1
		}
		if a.cursor < 0 {
			a.cursor = 0
		}
	}
}

func redirectCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return enterDashboardMsg{}
	})
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// pieOrigin returns the screen cell of the pie canvas's top-left corner.
// Derived from the same layout constants the dashboard renderer uses, so
// mouse translation and rendering cannot drift apart.
func (a App) pieOrigin() (x, y int) {
	halves := components.LayoutRow(a.contentWidth(), 2)
	x = halves[0] + 2 // right card border + padding
	y = headerHeight + summaryHeight + progressHeight + 2 // card border + title line
	return x, y
}

// updateHover translates a mouse position into chart coordinates and
// refreshes the tooltip.
func (a *App) updateHover(msg tea.MouseMsg) {
	ox, oy := a.pieOrigin()
	col := msg.X - ox
	row := msg.Y - oy

	if col < 0 || col >= pieCanvasW || row < 0 || row >= pieCanvasH {
		a.tooltip = ""
		return
	}

	x, y := components.CanvasPoint(col, row)
	seg, ok := pie.HitTest(a.segments, x, y)
	if !ok {
		a.tooltip = ""
		return
	}
	a.tooltip = pie.Tooltip(seg, stats.Sum(a.totals))
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.view == viewAuth {
		return a.viewAuth()
	}
	return a.viewDashboard()
}
