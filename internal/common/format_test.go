package common

import (
	"math"
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value    float64
		currency string
		want     string
	}{
		{1234.56, "USD", "$1,234.56"},
		{0, "USD", "$0.00"},
		{187.42, "USD", "$187.42"},
		{-51.2, "USD", "-$51.20"},
		{99.99, "XXX?", "99.99"}, // unknown code falls back to plain
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.value, tt.currency); got != tt.want {
			t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.value, tt.currency, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(141.6, "USD"); got != "+$141.60" {
		t.Errorf("positive = %q", got)
	}
	if got := FormatSignedMoney(-51.2, "USD"); got != "-$51.20" {
		t.Errorf("negative = %q", got)
	}
	if got := FormatSignedMoney(0, "USD"); got != "+$0.00" {
		t.Errorf("zero = %q", got)
	}
}

func TestFormatSignedPct(t *testing.T) {
	if got := FormatSignedPct(1.176); got != "+1.18%" {
		t.Errorf("positive = %q", got)
	}
	if got := FormatSignedPct(-0.64); got != "-0.64%" {
		t.Errorf("negative = %q", got)
	}
}

// Non-finite values pass through visibly instead of being masked, so a
// malformed payload shows up in the rendered frame rather than as $NaN
// formatting surprises.
func TestFormat_NonFinite(t *testing.T) {
	if got := FormatMoney(math.NaN(), "USD"); !strings.Contains(got, "NaN") {
		t.Errorf("NaN rendered as %q", got)
	}
	if got := FormatSignedPct(math.Inf(1)); !strings.Contains(got, "Inf") {
		t.Errorf("Inf rendered as %q", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(120); got != "120" {
		t.Errorf("whole = %q", got)
	}
	if got := FormatQuantity(0.5); got != "0.5000" {
		t.Errorf("fractional = %q", got)
	}
}
