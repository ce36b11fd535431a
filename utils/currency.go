package utils

import (
	"fmt"
	"math"
)

// FormatPriceBGN formats a lev amount for display, e.g. 12.5 -> "12.50 лв."
func FormatPriceBGN(amount float64) string {
	return fmt.Sprintf("%.2f лв.", amount)
}

// FormatPriceEUR formats a euro amount for display, e.g. 6.14 -> "6.14 €"
func FormatPriceEUR(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}

// ValidPrice reports whether a price is usable: positive and representable
// with two decimals. Prices in both currencies are entered independently,
// neither is derived from the other.
func ValidPrice(amount float64) bool {
	if amount <= 0 {
		return false
	}
	// Float noise: 6.14*100 is 613.999..., compare against the rounded cent.
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
