package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/classify"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/model"
)

var errEmptyDescription = errors.New("type a short description of your expense first")

type modalKind int

const (
	modalExpense modalKind = iota
	modalBudget
	modalAI
)

// modalForm is a dashboard overlay form; at most one is active.
type modalForm struct {
	kind modalKind
	form *huh.Form
}

type expenseValues struct {
	title    string
	category string
	amount   string
	date     string
}

type budgetValues struct {
	amount string
}

type aiValues struct {
	description string
}

func categoryOptions() []huh.Option[string] {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = c.String()
	}
	return huh.NewOptions(names...)
}

func newExpenseForm(v *expenseValues) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Placeholder("Chai with friends").Value(&v.title),
		huh.NewSelect[string]().Title("Category").
			Options(categoryOptions()...).Value(&v.category),
		huh.NewInput().Title("Amount (₹)").Placeholder("45.50").Value(&v.amount),
		huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&v.date),
	)).WithShowHelp(false)
}

func newBudgetForm(v *budgetValues) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Monthly budget (₹)").Placeholder("5000").Value(&v.amount),
	)).WithShowHelp(false)
}

func newAIForm(v *aiValues) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Describe the expense").
			Placeholder("bus fare 45.50 to campus").Value(&v.description),
	)).WithShowHelp(false)
}

func (a App) openModal(kind modalKind) (tea.Model, tea.Cmd) {
	var form *huh.Form
	switch kind {
	case modalExpense:
		form = newExpenseForm(a.expenseVals)
	case modalBudget:
		form = newBudgetForm(a.budgetVals)
	case modalAI:
		*a.aiVals = aiValues{}
		form = newAIForm(a.aiVals)
	}
	a.modal = &modalForm{kind: kind, form: form}
	a.dashMsg = message{}
	a.resizeForms()
	return a, a.modal.form.Init()
}

func (a App) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := a.modal.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		a.modal.form = f
	}

	switch a.modal.form.State {
	case huh.StateCompleted:
		return a.submitModal()
	case huh.StateAborted:
		a.modal = nil
		return a, nil
	}

	return a, cmd
}

func (a App) submitModal() (tea.Model, tea.Cmd) {
	kind := a.modal.kind
	a.modal = nil

	switch kind {
	case modalExpense:
		return a.submitExpense()
	case modalBudget:
		return a.submitBudget()
	default:
		return a.submitAIFill()
	}
}

func (a App) submitExpense() (tea.Model, tea.Cmd) {
	_, err := a.session.AddExpense(
		a.expenseVals.title,
		model.Category(a.expenseVals.category),
		a.expenseVals.amount,
		a.expenseVals.date,
	)
	if err != nil {
		// Values stay in expenseVals so reopening the form keeps them.
		a.dashMsg = errorMessage(err)
		return a, nil
	}

	*a.expenseVals = expenseValues{}
	a.dashMsg = successMessage("Expense added!")
	a.refresh(dirtyFor(mutAddExpense))
	return a, nil
}

func (a App) submitBudget() (tea.Model, tea.Cmd) {
	if err := a.session.SetBudget(a.budgetVals.amount); err != nil {
		a.dashMsg = errorMessage(err)
		return a, nil
	}

	a.dashMsg = successMessage("Monthly budget updated!")
	a.refresh(dirtyFor(mutSetBudget))
	return a, nil
}

// submitAIFill guesses title, category, and amount from the free-text
// description and reopens the expense form pre-filled. It never fails
// beyond requiring a non-empty description.
func (a App) submitAIFill() (tea.Model, tea.Cmd) {
	description := strings.TrimSpace(a.aiVals.description)
	if description == "" {
		a.dashMsg = errorMessage(errEmptyDescription)
		return a, nil
	}

	if title := classify.BuildTitle(description); title != "" {
		a.expenseVals.title = title
	}
	a.expenseVals.category = classify.Guess(description).String()
	if amount, ok := classify.ExtractAmount(description); ok {
		a.expenseVals.amount = strconv.FormatFloat(amount, 'f', -1, 64)
	}
	if a.expenseVals.date == "" {
		a.expenseVals.date = time.Now().Format("2006-01-02")
	}

	m, cmd := a.openModal(modalExpense)
	app := m.(App)
	app.dashMsg = successMessage(
		"We guessed the title, category and amount for you. Review once and submit.")
	return app, cmd
}
