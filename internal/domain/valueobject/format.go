package valueobject

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatNumber renders v in its shortest decimal form ("50", "12.5").
// This is how raw user input (dimensions, divisors) appears in formulas.
func FormatNumber(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}

// FormatFixed2 renders v with exactly two decimal places. Rounding works on
// the exact binary value of v, half away from zero, so 1.005 (stored as
// 1.00499...) renders "1.00" while the exact tie 0.125 renders "0.13".
func FormatFixed2(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloatWithExponent(v, -2).StringFixed(2)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
