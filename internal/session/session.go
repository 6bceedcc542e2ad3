// Package session holds the in-memory state for the single logged-in
// user and their expense list. Nothing here touches disk: the account and
// every expense live exactly as long as the process does.
package session

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/model"
)

// Validation and auth errors surfaced as inline form messages.
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingFields    = errors.New("all required fields must be filled in")
	ErrNoSuchAccount    = errors.New("no account found, sign up first")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrNotAuthenticated = errors.New("log in to do that")
	ErrInvalidInput     = errors.New("all fields must be filled with valid values")
	ErrInvalidBudget    = errors.New("budget must be a number, 0 or more")
)

// Session owns the current user and expense list. The expense ID counter
// is deliberately not reset on signup, so IDs stay unique for the whole
// process even across account replacement.
type Session struct {
	user     *model.User
	expenses []model.Expense
	nextID   int
}

// New returns an empty session with no user.
func New() *Session {
	return &Session{nextID: 1}
}

// LoggedIn reports whether a user is active.
func (s *Session) LoggedIn() bool {
	return s.user != nil
}

// User returns the active user, or false when nobody is logged in.
func (s *Session) User() (model.User, bool) {
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Expenses returns a copy of the expense list in insertion order.
func (s *Session) Expenses() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// SignUp replaces the current account. Only one account exists at a time;
// signing up again starts over with an empty expense list and a zero
// budget.
func (s *Session) SignUp(name, college, email, password, confirm string) (model.User, error) {
	name = strings.TrimSpace(name)
	college = strings.TrimSpace(college)
	email = strings.ToLower(strings.TrimSpace(email))

	if password != confirm {
		return model.User{}, ErrPasswordMismatch
	}
	if name == "" || college == "" || email == "" || password == "" {
		return model.User{}, ErrMissingFields
	}

	s.user = &model.User{
		Name:     name,
		College:  college,
		Email:    email,
		Password: password,
	}
	s.expenses = nil
	return *s.user, nil
}

// LogIn checks the given credentials against the in-memory account.
// Email comparison is case-insensitive; password comparison is exact.
func (s *Session) LogIn(email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.user == nil || s.user.Email != email {
		return model.User{}, ErrNoSuchAccount
	}
	if s.user.Password != password {
		return model.User{}, ErrWrongPassword
	}
	return *s.user, nil
}

// LogOut clears the user and all expenses unconditionally.
func (s *Session) LogOut() {
	s.user = nil
	s.expenses = nil
}

// AddExpense validates and appends a new expense, assigning the next ID.
func (s *Session) AddExpense(title string, category model.Category, amountText, dateText string) (model.Expense, error) {
	if s.user == nil {
		return model.Expense{}, ErrNotAuthenticated
	}

	title = strings.TrimSpace(title)
	amountText = strings.TrimSpace(amountText)
	dateText = strings.TrimSpace(dateText)

	if title == "" || amountText == "" || dateText == "" || !category.Valid() {
		return model.Expense{}, ErrInvalidInput
	}

	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return model.Expense{}, ErrInvalidInput
	}

	exp := model.Expense{
		ID:       s.nextID,
		Title:    title,
		Category: category,
		Amount:   amount,
		Date:     dateText,
	}
	s.nextID++
	s.expenses = append(s.expenses, exp)
	return exp, nil
}

// DeleteExpense removes the expense with the given ID. Deleting an ID
// that is not present is a silent no-op.
func (s *Session) DeleteExpense(id int) {
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return
		}
	}
}

// SetBudget parses and stores the monthly budget for the active user.
func (s *Session) SetBudget(amountText string) error {
	if s.user == nil {
		return ErrNotAuthenticated
	}

	amountText = strings.TrimSpace(amountText)
	if amountText == "" {
		return ErrInvalidBudget
	}

	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || math.IsNaN(amount) || amount < 0 || math.IsInf(amount, 0) {
		return ErrInvalidBudget
	}

	s.user.MonthlyBudget = amount
	return nil
}
