// Package model defines the core domain types for the expense tracker.
package model

import "strings"

// User is the single in-memory account. The password is kept as plain
// text for the lifetime of the process only and is never written out.
type User struct {
	Name          string
	College       string
	Email         string // stored lowercased
	Password      string
	MonthlyBudget float64
}

// Initial returns the uppercase first letter of the user's name for the
// dashboard avatar, or "?" when the name is empty.
func (u User) Initial() string {
	for _, r := range u.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Expense is a single dated, categorized spend record.
type Expense struct {
	ID       int
	Title    string
	Category Category
	Amount   float64
	Date     string // ISO calendar date, e.g. "2026-08-30"
}
