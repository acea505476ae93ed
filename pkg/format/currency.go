// Package format provides display formatting for currency amounts.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Euro returns a currency string with thousands separators and a trailing
// euro sign (e.g., "200,000.00 €"). Display concern only; calculations keep
// raw float64 values.
func Euro(amount float64) string {
	return printer.Sprintf("%.2f €", amount)
}

// Percent returns a percentage string with one decimal (e.g., "89.9%").
func Percent(value float64) string {
	return printer.Sprintf("%.1f%%", value)
}
