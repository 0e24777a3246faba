// Package money formats whole-rupee amounts for customer-facing text.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Symbol = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders a whole-rupee amount as "₹1,234.00".
func Format(rupees int64) string {
	return Symbol + printer.Sprintf("%.2f", float64(rupees))
}

// Paise converts whole rupees to the minor unit used by the payment widget.
func Paise(rupees int64) int64 {
	return rupees * 100
}
