package services

import (
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// roundHalfUp rounds to the given number of places with ties going toward +Inf,
// so 3.05 becomes 3.1 and 0.5 becomes 1.
func roundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}

// roundToInt rounds half-up to a whole number
func roundToInt(d decimal.Decimal) int {
	return int(roundHalfUp(d, 0).IntPart())
}

// ceilToInt rounds up to a whole number
func ceilToInt(d decimal.Decimal) int {
	return int(d.Ceil().IntPart())
}

// fixed formats d half-up with exactly the given number of places
func fixed(d decimal.Decimal, places int32) string {
	return roundHalfUp(d, places).StringFixed(places)
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func count(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
