// Package classify maps free-text expense descriptions onto the fixed
// category set and extracts form fields from them. The matching is plain
// keyword containment on purpose: the "AI fill" feature is a heuristic,
// not a language model.
package classify

import (
	"strings"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/model"
)

// keywordRule binds a category to the substrings that select it.
// Rules are checked in order; the first hit wins.
type keywordRule struct {
	category model.Category
	keywords []string
}

var rules = []keywordRule{
	{model.CategoryFood, []string{"chai", "snack", "food", "lunch", "dinner"}},
	{model.CategoryTravel, []string{"bus", "auto", "train", "cab", "uber", "ola", "travel"}},
	{model.CategoryFees, []string{"fee", "tuition", "exam", "college fee"}},
	{model.CategoryFun, []string{"movie", "netflix", "party", "game", "games", "hangout"}},
}

// Guess returns the category for a description. It is total: any input,
// including the empty string, maps to a member of the category set, with
// Others as the fallback.
func Guess(text string) model.Category {
	t := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryOthers
}
