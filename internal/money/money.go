// Package money renders the storefront's prices. Everything is priced and
// displayed in pounds sterling.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

// GBP formats v as a pound amount, e.g. "£9.99". The symbol sits flush
// against the digits.
func GBP(v float64) string {
	return printer.Sprintf("£%.2f", v)
}
