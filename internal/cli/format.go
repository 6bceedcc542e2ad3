// Package cli provides formatting helpers for terminal output.
package cli

import (
	"math"
	"strconv"
	"strings"
)

// FormatRupees formats an amount as a rupee string with Indian digit
// grouping and at most two fraction digits.
// e.g., 1234567.5 -> "₹12,34,567.5", 200 -> "₹200"
func FormatRupees(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	out := groupIndian(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return "₹" + out
}

// groupIndian inserts commas in the Indian style: the last three digits
// form one group, everything before that is grouped in pairs.
// e.g., "1234567" -> "12,34,567"
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}

// FormatPercent formats a whole-number percentage, e.g. 42 -> "42%".
func FormatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}
