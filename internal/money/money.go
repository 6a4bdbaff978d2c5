// Package money renders decimal amounts as currency strings for reports and
// invoices. Arithmetic stays in shopspring/decimal; go-money is used only at
// the display boundary where locale symbols and separators matter.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Round2 rounds an amount to two decimal places, the minor-unit precision
// every persisted amount is kept at.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount in the given ISO currency, e.g. "$1,234.50" for
// USD. Unknown currency codes fall back to a plain two-decimal string.
func Format(amount decimal.Decimal, currencyCode string) string {
	cur := gomoney.GetCurrency(currencyCode)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return gomoney.New(minor, currencyCode).Display()
}
