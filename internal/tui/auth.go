package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/config"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/components"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

type authForm = *huh.Form

type signupValues struct {
	name     string
	college  string
	email    string
	password string
	confirm  string
}

type loginValues struct {
	email    string
	password string
}

func newSignupForm(v *signupValues) authForm {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&v.name),
		huh.NewInput().Title("College").Value(&v.college),
		huh.NewInput().Title("Email").Value(&v.email),
		huh.NewInput().Title("Password").
			EchoMode(huh.EchoModePassword).Value(&v.password),
		huh.NewInput().Title("Confirm password").
			EchoMode(huh.EchoModePassword).Value(&v.confirm),
	)).WithShowHelp(false)
}

func newLoginForm(v *loginValues) authForm {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Email").Value(&v.email),
		huh.NewInput().Title("Password").
			EchoMode(huh.EchoModePassword).Value(&v.password),
	)).WithShowHelp(false)
}

func (a App) activeAuthForm() authForm {
	if a.authTab == tabLogin {
		return a.loginForm
	}
	return a.signupForm
}

func (a *App) resizeForms() {
	if a.width == 0 {
		return
	}
	w := a.contentWidth() - 4
	a.signupForm = a.signupForm.WithWidth(w)
	a.loginForm = a.loginForm.WithWidth(w)
	if a.modal != nil {
		a.modal.form = a.modal.form.WithWidth(w)
	}
}

// switchAuthTab toggles between the signup and login forms, clearing the
// feedback line, and remembers the choice as a preference.
func (a App) switchAuthTab() (tea.Model, tea.Cmd) {
	if a.authTab == tabSignup {
		a.authTab = tabLogin
	} else {
		a.authTab = tabSignup
	}
	a.authMsg = message{}

	if a.authTab == tabLogin {
		a.cfg.General.AuthTab = "login"
	} else {
		a.cfg.General.AuthTab = "signup"
	}
	_ = config.Save(a.cfg) // best-effort preference

	return a, a.activeAuthForm().Init()
}

func (a App) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.redirecting {
		// Ignore input during the cosmetic redirect delay.
		return a, nil
	}

	if msg.String() == "ctrl+t" {
		return a.switchAuthTab()
	}

	return a.forwardToAuthForm(msg)
}

func (a App) forwardToAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := a.activeAuthForm()
	updated, cmd := form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		if a.authTab == tabLogin {
			a.loginForm = f
		} else {
			a.signupForm = f
		}
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		return a.submitAuth()
	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

// submitAuth runs the completed form's values through the session and
// either shows an inline error (recreating the form) or schedules the
// dashboard redirect.
func (a App) submitAuth() (tea.Model, tea.Cmd) {
	if a.authTab == tabLogin {
		_, err := a.session.LogIn(a.loginVals.email, a.loginVals.password)
		a.loginForm = newLoginForm(a.loginVals)
		if err != nil {
			a.authMsg = errorMessage(err)
			a.resizeForms()
			return a, a.loginForm.Init()
		}
		a.authMsg = successMessage("Login successful! Taking you to your dashboard...")
		a.redirecting = true
		return a, tea.Batch(redirectCmd(loginRedirectDelay), a.spin.Tick)
	}

	_, err := a.session.SignUp(
		a.signupVals.name,
		a.signupVals.college,
		a.signupVals.email,
		a.signupVals.password,
		a.signupVals.confirm,
	)
	a.signupForm = newSignupForm(a.signupVals)
	if err != nil {
		a.authMsg = errorMessage(err)
		a.resizeForms()
		return a, a.signupForm.Init()
	}

	*a.signupVals = signupValues{}
	a.authMsg = successMessage("Account created! Redirecting to your dashboard...")
	a.redirecting = true
	return a, tea.Batch(redirectCmd(signupRedirectDelay), a.spin.Tick)
}

func (a App) viewAuth() string {
	t := theme.Active

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(logoStyle.Render("◈ ExpenseTracker"))
	b.WriteString(subtitleStyle.Render(" · Student Expense Tracker"))
	b.WriteString("\n\n")
	b.WriteString(components.RenderAuthTabs(a.authTab))
	b.WriteString("\n\n")
	b.WriteString(a.activeAuthForm().View())
	b.WriteString("\n")
	if a.redirecting {
		b.WriteString(" " + a.spin.View())
	}
	b.WriteString(renderMessage(a.authMsg))
	b.WriteString("\n")

	hints := " [ctrl+t] switch tab  [enter] next field  [ctrl+c] quit"
	body := b.String()
	bodyH := lipgloss.Height(body)
	if pad := a.height - bodyH - 1; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	body += components.RenderStatusBar(a.width, hints, "")

	return body
}

func (a App) viewTooNarrow() string {
	return "\n  Terminal too narrow.\n  ExpenseTracker needs at least 70 columns.\n"
}

func renderMessage(m message) string {
	if m.text == "" {
		return ""
	}
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.Green)
	if m.isError {
		style = lipgloss.NewStyle().Foreground(t.Red)
	}
	return " " + style.Render(m.text)
}
