// Package stats derives the dashboard aggregates: budget summary,
// progress percentages, and per-category totals.
package stats

import (
	"fmt"
	"math"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/cli"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/model"
)

// labelPercentCap bounds the textual percent label; the bar itself is
// clamped at 100 separately.
const labelPercentCap = 200

// Summary holds everything the summary cards and progress panel show.
type Summary struct {
	Budget    float64
	Spent     float64
	Remaining float64

	// RawPercent is round(spent/budget*100) capped at 200, or 0 when no
	// budget is set. BarPercent is the same value clamped at 100 for the
	// bounded progress bar.
	RawPercent int
	BarPercent int

	// Label is the progress caption, e.g. "42% used".
	Label string

	// OverMessage is non-empty exactly when spending exceeds a non-zero
	// budget.
	OverMessage string
}

// Summarize computes the budget summary for the given expense list.
func Summarize(budget float64, expenses []model.Expense) Summary {
	spent := 0.0
	for _, e := range expenses {
		spent += e.Amount
	}

	s := Summary{
		Budget:    budget,
		Spent:     spent,
		Remaining: math.Max(budget-spent, 0),
	}

	if budget > 0 {
		pct := int(math.Round(spent / budget * 100))
		if pct > labelPercentCap {
			pct = labelPercentCap
		}
		s.RawPercent = pct
		s.BarPercent = min(pct, 100)
		s.Label = cli.FormatPercent(pct) + " used"
	} else {
		s.Label = "Set a budget to get started"
	}

	if budget > 0 && spent > budget {
		s.OverMessage = fmt.Sprintf(
			"You have crossed your monthly budget by %s. Try to slow down a bit this week.",
			cli.FormatRupees(spent-budget))
	}

	return s
}

// CategoryTotal is one category's share of total spend.
type CategoryTotal struct {
	Category model.Category
	Total    float64
}

// CategoryTotals sums expense amounts per category, preserving the order
// in which each category first appears in the list.
func CategoryTotals(expenses []model.Expense) []CategoryTotal {
	idx := make(map[model.Category]int)
	var totals []CategoryTotal
	for _, e := range expenses {
		if i, ok := idx[e.Category]; ok {
			totals[i].Total += e.Amount
			continue
		}
		idx[e.Category] = len(totals)
		totals = append(totals, CategoryTotal{Category: e.Category, Total: e.Amount})
	}
	return totals
}

// MaxTotal returns the largest category total, used to scale the stat
// bars to 0-100%.
func MaxTotal(totals []CategoryTotal) float64 {
	max := 0.0
	for _, t := range totals {
		if t.Total > max {
			max = t.Total
		}
	}
	return max
}

// Sum returns the combined value of all category totals.
func Sum(totals []CategoryTotal) float64 {
	sum := 0.0
	for _, t := range totals {
		sum += t.Total
	}
	return sum
}
