// Package invoiceparse turns loosely tabular invoice text into a structured
// record: header identifiers, decoded line items and a reconciled
// tax/total breakdown. It is a deterministic rule cascade over already
// extracted page text; it performs no I/O and keeps no state across calls.
package invoiceparse

import (
	"fmt"

	"github.com/pdftodata/invoice-extraction/dto"
)

// Options configures the strategy choices the rule cascade leaves open.
type Options struct {
	HeaderStrategy   HeaderStrategy
	DiscountPriority DiscountPriority
}

// Diagnostics collects recoverable warnings raised during one extraction.
// The engine never logs directly; callers decide what to do with these.
type Diagnostics struct {
	Warnings []string
}

func (d *Diagnostics) Warnf(format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Extractor is the composition root of the cascade. Safe for concurrent use:
// all mutable state lives inside a single Extract call.
type Extractor struct {
	opts  Options
	rules *RuleSet
}

// NewExtractor builds an extractor with the default vendor rule set.
func NewExtractor(opts Options) *Extractor {
	return NewExtractorWithRules(opts, DefaultRuleSet())
}

// NewExtractorWithRules builds an extractor with a caller-supplied rule set.
func NewExtractorWithRules(opts Options, rules *RuleSet) *Extractor {
	if opts.HeaderStrategy == "" {
		opts.HeaderStrategy = HeaderFirstMatch
	}
	if opts.DiscountPriority == "" {
		opts.DiscountPriority = DiscountGenericFirst
	}
	return &Extractor{opts: opts, rules: rules}
}

// Extract runs the full pipeline on newline-joined page text and returns
// the assembled record together with any warnings raised along the way.
// It is total: missing fields come back empty, missing amounts zero.
func (e *Extractor) Extract(text string) (dto.InvoiceRecord, []string) {
	diag := &Diagnostics{}

	header := ExtractHeader(text, e.opts.HeaderStrategy, diag)

	block := LocateItemBlock(text, e.rules)
	if block == "" {
		diag.Warnf("no line item table detected")
	}
	items := ParseLineItems(block, e.rules, diag)

	totals := ReconcileTotals(text, items, e.rules, e.opts.DiscountPriority, diag)

	record := dto.InvoiceRecord{
		InvoiceNo:    header.InvoiceNo,
		InvoiceDate:  header.InvoiceDate,
		BuyerDetails: header.BuyerDetails,
		Products:     items,
		CGST:         totals.CGST,
		SGST:         totals.SGST,
		IGST:         totals.IGST,
		Total:        totals.Subtotal,
		Discount:     totals.Discount,
		GrandTotal:   totals.GrandTotal,
	}
	if totals.RoundOff != "0.00" {
		record.RoundOff = totals.RoundOff
	}
	record.AmountInWords = AmountInWords(totals.GrandTotal)

	return record, diag.Warnings
}
