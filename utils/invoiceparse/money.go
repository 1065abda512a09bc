package invoiceparse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// cleanAmount strips thousands separators and currency symbols from a
// printed amount so it can be parsed or emitted as a plain decimal string.
func cleanAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₹")
	return strings.TrimSpace(s)
}

// parseAmount parses a printed amount. Anything that fails to parse is
// treated as zero so reconciliation always runs to completion.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(cleanAmount(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// formatAmount renders a monetary value with exactly two fractional digits.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
