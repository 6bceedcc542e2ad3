package cli

import (
	"math"
	"testing"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{5, "₹5"},
		{200, "₹200"},
		{1000, "₹1,000"},
		{45.5, "₹45.5"},
		{99999, "₹99,999"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
		{1234567.5, "₹12,34,567.5"},
		{12345678.25, "₹1,23,45,678.25"},
		{-5, "₹-5"},
		{-1234, "₹-1,234"},
		{0.5, "₹0.5"},
	}

	for _, tt := range tests {
		if got := FormatRupees(tt.in); got != tt.want {
			t.Errorf("FormatRupees(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRupeesNonFinite(t *testing.T) {
	if got := FormatRupees(math.NaN()); got != "₹0" {
		t.Errorf("FormatRupees(NaN) = %q, want ₹0", got)
	}
	if got := FormatRupees(math.Inf(1)); got != "₹0" {
		t.Errorf("FormatRupees(+Inf) = %q, want ₹0", got)
	}
}

func TestFormatRupeesDropsTrailingZeros(t *testing.T) {
	// Two fraction digits max, none shown when the value is whole.
	if got := FormatRupees(10.00); got != "₹10" {
		t.Errorf("FormatRupees(10.00) = %q, want ₹10", got)
	}
	if got := FormatRupees(10.10); got != "₹10.1" {
		t.Errorf("FormatRupees(10.10) = %q, want ₹10.1", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(120); got != "120%" {
		t.Errorf("FormatPercent(120) = %q, want 120%%", got)
	}
}
