package stats

import (
	"math"
	"strings"
	"testing"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/model"
)

func exp(cat model.Category, amount float64) model.Expense {
	return model.Expense{Category: cat, Amount: amount, Date: "2026-08-30"}
}

func TestSummarizeNoBudget(t *testing.T) {
	s := Summarize(0, []model.Expense{exp(model.CategoryFood, 50)})
	if s.Label != "Set a budget to get started" {
		t.Errorf("Label = %q", s.Label)
	}
	if s.RawPercent != 0 || s.BarPercent != 0 {
		t.Errorf("percents = %d/%d, want 0/0 with no budget", s.RawPercent, s.BarPercent)
	}
	if s.OverMessage != "" {
		t.Errorf("OverMessage = %q, want empty with no budget", s.OverMessage)
	}
	if s.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0", s.Remaining)
	}
}

func TestSummarizeOverBudget(t *testing.T) {
	expenses := []model.Expense{
		exp(model.CategoryFood, 700),
		exp(model.CategoryTravel, 500),
	}
	s := Summarize(1000, expenses)

	if s.Spent != 1200 {
		t.Fatalf("Spent = %v, want 1200", s.Spent)
	}
	if s.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0 (clamped)", s.Remaining)
	}
	if s.RawPercent != 120 {
		t.Errorf("RawPercent = %d, want 120", s.RawPercent)
	}
	if s.BarPercent != 100 {
		t.Errorf("BarPercent = %d, want 100 (clamped)", s.BarPercent)
	}
	if s.Label != "120% used" {
		t.Errorf("Label = %q, want \"120%% used\"", s.Label)
	}
	if !strings.Contains(s.OverMessage, "₹200") {
		t.Errorf("OverMessage = %q, want mention of ₹200", s.OverMessage)
	}
}

func TestSummarizePercentLabelCappedAt200(t *testing.T) {
	s := Summarize(100, []model.Expense{exp(model.CategoryFun, 900)})
	if s.RawPercent != 200 {
		t.Errorf("RawPercent = %d, want 200 (cap)", s.RawPercent)
	}
	if s.BarPercent != 100 {
		t.Errorf("BarPercent = %d, want 100", s.BarPercent)
	}
}

func TestSummarizeUnderBudget(t *testing.T) {
	s := Summarize(1000, []model.Expense{exp(model.CategoryFood, 250)})
	if s.Remaining != 750 {
		t.Errorf("Remaining = %v, want 750", s.Remaining)
	}
	if s.RawPercent != 25 || s.BarPercent != 25 {
		t.Errorf("percents = %d/%d, want 25/25", s.RawPercent, s.BarPercent)
	}
	if s.OverMessage != "" {
		t.Errorf("OverMessage = %q, want empty", s.OverMessage)
	}
}

func TestCategoryTotalsPreserveFirstSeenOrder(t *testing.T) {
	expenses := []model.Expense{
		exp(model.CategoryTravel, 30),
		exp(model.CategoryFood, 10),
		exp(model.CategoryTravel, 20),
		exp(model.CategoryFun, 5),
	}
	totals := CategoryTotals(expenses)

	want := []CategoryTotal{
		{model.CategoryTravel, 50},
		{model.CategoryFood, 10},
		{model.CategoryFun, 5},
	}
	if len(totals) != len(want) {
		t.Fatalf("len = %d, want %d", len(totals), len(want))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("totals[%d] = %+v, want %+v", i, totals[i], want[i])
		}
	}
}

func TestCategoryTotalsSumMatchesExpenseSum(t *testing.T) {
	expenses := []model.Expense{
		exp(model.CategoryFood, 12.5),
		exp(model.CategoryTravel, 7.25),
		exp(model.CategoryFood, -3),
		exp(model.CategoryOthers, 100),
	}

	var direct float64
	for _, e := range expenses {
		direct += e.Amount
	}

	if got := Sum(CategoryTotals(expenses)); math.Abs(got-direct) > 1e-9 {
		t.Errorf("Sum(CategoryTotals) = %v, want %v", got, direct)
	}
}

func TestCategoryTotalsEmpty(t *testing.T) {
	if totals := CategoryTotals(nil); len(totals) != 0 {
		t.Errorf("CategoryTotals(nil) = %v, want empty", totals)
	}
	if MaxTotal(nil) != 0 {
		t.Error("MaxTotal(nil) != 0")
	}
}
