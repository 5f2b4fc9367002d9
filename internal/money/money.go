// Package money formats currency, quantities and dates the way Brazilian
// budgets print them.
package money

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// DateLayout is the dd/mm/yyyy layout used on budgets.
const DateLayout = "02/01/2006"

// BRL formats v as Brazilian reais, e.g. "R$ 1.234,56".
func BRL(v float64) string {
	v = math.Round(v*100) / 100
	if v < 0 {
		return "-R$ " + printer.Sprintf("%.2f", -v)
	}
	return "R$ " + printer.Sprintf("%.2f", v)
}

// Quantity formats a material quantity without trailing zeros, using a
// decimal comma: 6 -> "6", 2.5 -> "2,5", 0.67 -> "0,67".
func Quantity(v float64) string {
	s := printer.Sprintf("%.2f", math.Round(v*100)/100)
	if strings.Contains(s, ",") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ",")
	}
	return s
}

// Area formats a surface in m² with two decimals.
func Area(v float64) string {
	return printer.Sprintf("%.2f", v) + " m²"
}

// Date formats t as dd/mm/yyyy.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidUntil returns the last day a budget issued at issued stays valid.
func ValidUntil(issued time.Time, days int) time.Time {
	return issued.AddDate(0, 0, days)
}
