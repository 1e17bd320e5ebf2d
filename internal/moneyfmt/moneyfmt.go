// Package moneyfmt renders coin amounts the way the game displays them:
// vi-VN digit grouping with a "coins" suffix.
package moneyfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// Format renders an amount as a grouped integer with the coin suffix,
// e.g. 10000 -> "10.000 coins".
func Format(amount int64) string {
	return printer.Sprintf("%d coins", amount)
}

// FormatSigned renders like Format but with an explicit +/- prefix.
func FormatSigned(amount int64) string {
	if amount >= 0 {
		return "+" + Format(amount)
	}
	return "-" + Format(-amount)
}
