package invoiceparse

import (
	"regexp"
	"strings"

	"github.com/pdftodata/invoice-extraction/dto"
	"github.com/shopspring/decimal"
)

// DiscountPriority selects which discount label family is tried first.
type DiscountPriority string

const (
	// DiscountGenericFirst tries the fixed "Discount A/c" amount before a
	// percentage-style trade discount.
	DiscountGenericFirst DiscountPriority = "discount_ac"
	// DiscountTradeFirst tries the "Trade Discount N%" label first.
	DiscountTradeFirst DiscountPriority = "trade_discount"
)

// Totals is the reconciled monetary breakdown. Every field is a decimal
// string with exactly two fractional digits.
type Totals struct {
	Subtotal   string
	Discount   string
	CGST       string
	SGST       string
	IGST       string
	RoundOff   string
	GrandTotal string
}

var (
	printedTotalRe = regexp.MustCompile(`(?im)\bTotal\s*:?\s*₹?\s*([0-9,]+\.[0-9]{1,2})`)

	discountAmountRe = regexp.MustCompile(`(?i)Discount\s+A/c\s*\(?\s*-?\s*\)?\s*₹?\s*\(?([0-9,]+\.\d{2})\)?`)
	discountPctRe    = regexp.MustCompile(`(?i)Trade\s+Discount[^0-9%\n]*([0-9]+(?:\.[0-9]+)?)\s*%`)

	// the gap between the label and the figure carries the sign, which
	// vendors print as "-", "(-)" or a parenthesized amount
	roundOffRe = regexp.MustCompile(`(?i)Round[\s-]*Off([^0-9]*)([0-9,]+\.[0-9]{1,2})`)

	hundred = decimal.NewFromInt(100)
)

// ReconcileTotals cross-validates the printed total against the line item
// sum and derives a consistent subtotal/discount/tax/grand-total breakdown.
// The grand total is always recomputed, never lifted from a printed
// "Grand Total" figure: printed aggregates are regularly truncated by
// multi-line extraction loss and cannot be trusted on their own.
func ReconcileTotals(text string, items []dto.LineItem, rs *RuleSet, priority DiscountPriority, diag *Diagnostics) Totals {
	productTotal := decimal.Zero
	for _, item := range items {
		productTotal = productTotal.Add(parseAmount(item.Amount))
	}

	subtotal := selectSubtotal(text, productTotal, diag)
	discount := extractDiscount(text, productTotal, priority)

	cgst := extractTaxComponent(text, rs.CGSTLabels, subtotal)
	sgst := extractTaxComponent(text, rs.SGSTLabels, subtotal)
	igst := extractTaxComponent(text, rs.IGSTLabels, subtotal)
	if cgst.IsZero() && sgst.IsZero() && igst.IsZero() {
		diag.Warnf("no tax components found")
	}

	roundOff := extractRoundOff(text)

	grandTotal := subtotal.Sub(discount).Add(cgst).Add(sgst).Add(igst).Add(roundOff)

	return Totals{
		Subtotal:   formatAmount(subtotal),
		Discount:   formatAmount(discount),
		CGST:       formatAmount(cgst),
		SGST:       formatAmount(sgst),
		IGST:       formatAmount(igst),
		RoundOff:   formatAmount(roundOff),
		GrandTotal: formatAmount(grandTotal),
	}
}

// selectSubtotal trusts the printed "Total" figure unless it comes in under
// 80% of the line item sum, in which case the printed figure is assumed to
// be a truncated capture and the sum wins. Small legitimate rounding gaps
// between the two stay on the printed side of the threshold.
func selectSubtotal(text string, productTotal decimal.Decimal, diag *Diagnostics) decimal.Decimal {
	m := printedTotalRe.FindStringSubmatch(text)
	if m == nil {
		diag.Warnf("printed total not found; using line item sum %s", formatAmount(productTotal))
		return productTotal
	}

	printed := parseAmount(m[1])
	threshold := productTotal.Mul(decimal.NewFromFloat(0.8))
	if printed.LessThan(threshold) {
		diag.Warnf("printed total %s below 80%% of line item sum %s; using the sum",
			formatAmount(printed), formatAmount(productTotal))
		return productTotal
	}
	return printed
}

func extractDiscount(text string, productTotal decimal.Decimal, priority DiscountPriority) decimal.Decimal {
	pct := func() (decimal.Decimal, bool) {
		m := discountPctRe.FindStringSubmatch(text)
		if m == nil {
			return decimal.Zero, false
		}
		p, err := decimal.NewFromString(m[1])
		if err != nil {
			return decimal.Zero, false
		}
		return productTotal.Mul(p).Div(hundred).Round(2), true
	}
	fixed := func() (decimal.Decimal, bool) {
		m := discountAmountRe.FindStringSubmatch(text)
		if m == nil {
			return decimal.Zero, false
		}
		return parseAmount(m[1]), true
	}

	first, second := fixed, pct
	if priority == DiscountTradeFirst {
		first, second = pct, fixed
	}
	if d, ok := first(); ok {
		return d
	}
	if d, ok := second(); ok {
		return d
	}
	return decimal.Zero
}

// extractTaxComponent tries each label spelling in priority order. For a
// label it first looks for an explicit rupee amount; a captured figure that
// turns out to be immediately followed by % is a rate, not an amount, and is
// applied to the subtotal instead. The first label yielding either wins.
func extractTaxComponent(text string, labels []string, subtotal decimal.Decimal) decimal.Decimal {
	for _, label := range labels {
		q := regexp.QuoteMeta(label)
		amountRe := regexp.MustCompile(`(?i)` + q + `[^0-9₹%]*₹?\s*([0-9,]+\.[0-9]{1,2})(\s*%)?`)
		if m := amountRe.FindStringSubmatch(text); m != nil {
			if strings.TrimSpace(m[2]) == "%" {
				p, err := decimal.NewFromString(cleanAmount(m[1]))
				if err == nil {
					return subtotal.Mul(p).Div(hundred).Round(2)
				}
			}
			return parseAmount(m[1])
		}

		pctRe := regexp.MustCompile(`(?i)` + q + `[^0-9₹%]*([0-9]+(?:\.[0-9]+)?)\s*%`)
		if m := pctRe.FindStringSubmatch(text); m != nil {
			p, err := decimal.NewFromString(m[1])
			if err == nil {
				return subtotal.Mul(p).Div(hundred).Round(2)
			}
		}
	}
	return decimal.Zero
}

func extractRoundOff(text string) decimal.Decimal {
	m := roundOffRe.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero
	}
	v := parseAmount(m[2])
	if strings.ContainsAny(m[1], "-(") {
		v = v.Neg()
	}
	return v
}
