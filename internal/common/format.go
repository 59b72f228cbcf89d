package common

import (
	"fmt"
	"math"
	"math/big"

	"github.com/Rhymond/go-money"
)

// FormatMoney formats a value in the given currency, e.g. "$1,234.56".
// Unknown currency codes fall back to a plain two-decimal rendering.
// Non-finite values render as-is so upstream data problems stay visible.
func FormatMoney(v float64, currency string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.2f", v)
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%.2f", v)
	}
	units := toMinorUnits(v, cur.Fraction)
	return money.New(units, cur.Code).Display()
}

// FormatSignedMoney formats a currency value with an explicit sign,
// e.g. "+$141.60" or "-$51.20".
func FormatSignedMoney(v float64, currency string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.2f", v)
	}
	if v < 0 {
		return "-" + FormatMoney(-v, currency)
	}
	return "+" + FormatMoney(v, currency)
}

// FormatSignedPct formats a percentage with an explicit sign, e.g. "+1.25%".
func FormatSignedPct(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.2f%%", v)
	}
	if v < 0 {
		return fmt.Sprintf("-%.2f%%", -v)
	}
	return fmt.Sprintf("+%.2f%%", v)
}

// FormatQuantity renders a position quantity without trailing decimal noise.
func FormatQuantity(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.4f", v)
}

// toMinorUnits converts a float amount to minor currency units with
// round-half-away-from-zero semantics, avoiding float drift on the scale step.
func toMinorUnits(v float64, fraction int) int64 {
	scaled := new(big.Float).SetFloat64(v)
	scaled.Mul(scaled, big.NewFloat(math.Pow10(fraction)))
	f, _ := scaled.Float64()
	return int64(math.Round(f))
}
