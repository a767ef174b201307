package utils

import "github.com/shopspring/decimal"

// CentsToDecimal converts an integer minor-unit amount into a decimal major
// unit value for display. All ledger math stays in integer cents; this
// conversion exists only at the presentation edge.
// Example: 10550 -> 105.50
func CentsToDecimal(amountCents int64) decimal.Decimal {
	return decimal.New(amountCents, -2)
}
