package classify

import (
	"regexp"
	"strconv"
	"strings"
)

var amountPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ExtractAmount returns the numeric value of the first unsigned decimal
// number in the text, or false when the text contains none.
func ExtractAmount(text string) (float64, bool) {
	match := amountPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

const (
	titleMaxWords = 6
	titleMaxLen   = 40
	titleCutLen   = 37
)

// BuildTitle derives a short expense title from a description: the first
// six words, truncated with an ellipsis past 40 characters, with the
// first letter capitalized.
func BuildTitle(text string) string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return ""
	}

	words := strings.Fields(clean)
	if len(words) > titleMaxWords {
		words = words[:titleMaxWords]
	}

	title := strings.Join(words, " ")
	if runes := []rune(title); len(runes) > titleMaxLen {
		title = string(runes[:titleCutLen]) + "..."
	}

	runes := []rune(title)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
