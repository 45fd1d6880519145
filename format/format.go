// Package format turns raw analyzer numbers into display strings.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Thousands prints a rounded integer with grouping separators: 1234567 -> "1,234,567".
func Thousands(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Number abbreviates large values: 12345 -> "12.35k", 1234567 -> "1.23m".
// Values below 10,000 are printed with Thousands.
func Number(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return printer.Sprintf("%.2fm", v/1e6)
	case abs >= 1e4:
		return printer.Sprintf("%.2fk", v/1e3)
	default:
		return Thousands(v)
	}
}

// Percentage prints a 0..1 ratio as a percentage without the % sign,
// with the given number of decimals.
func Percentage(ratio float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", digits), ratio*100)
}

// Decimal prints v with two decimals and grouping separators.
func Decimal(v float64) string {
	return printer.Sprintf("%.2f", v)
}
