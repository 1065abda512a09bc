package invoiceparse

import (
	"regexp"
	"strings"
)

// HeaderStrategy selects how the invoice number is picked when several
// patterns could match the same text.
type HeaderStrategy string

const (
	// HeaderFirstMatch returns the first pattern (in list order) that
	// matches anywhere in the text.
	HeaderFirstMatch HeaderStrategy = "first_match"
	// HeaderLongestMatch evaluates every pattern against every occurrence
	// and keeps the longest matched token, earliest occurrence on ties.
	// More robust when a permissive pattern hits a short incidental token.
	HeaderLongestMatch HeaderStrategy = "longest_match"
)

// Header holds the decoded identifier fields. Dates stay as the literal
// matched substring; vendors disagree on format and we do not canonicalize.
type Header struct {
	InvoiceNo    string
	InvoiceDate  string
	BuyerDetails string
}

// invoiceNoPatterns runs from most structurally specific to most permissive.
var invoiceNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{3}/\d{4}-\d{2}/\d{4}\b`),
	regexp.MustCompile(`\b[A-Z0-9]+/[0-9]{4}-[0-9]{2}\b`),
	regexp.MustCompile(`\b[A-Z0-9]+/[0-9]{2}-[0-9]{2}\b`),
	regexp.MustCompile(`\b\S+/[0-9]{2}-[0-9]{2}/[0-9]+\b`),
	regexp.MustCompile(`\b[A-Z]{1,5}[-/]?\d{1,6}/\d{2}-\d{2}\b`),
	regexp.MustCompile(`Invoice No\.\s*([0-9]+)`),
	regexp.MustCompile(`Invoice No\.\s*([A-Z0-9/-]+)`),
	regexp.MustCompile(`Invoice No\.\s*([A-Z0-9]+)`),
}

// e.g. 12-Mar-24 or 1/Jan/2024
var invoiceDateRe = regexp.MustCompile(`\b\d{1,2}[-/][A-Za-z]{3}[-/]\d{2,4}\b`)

var buyerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Bill To\s+([\s\S]+?)\s+(?:Place of Supply|GSTIN)`),
	regexp.MustCompile(`(?i)Buyer\s*\(Bill to\)\s*([\s\S]+?)\s+GSTIN`),
	regexp.MustCompile(`(?i)Consignee\s*\(Ship to\)\s*([\s\S]+?)\s+GSTIN`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExtractHeader decodes the invoice number, date and buyer block from raw
// text. It never fails; fields a pattern cannot find stay empty.
func ExtractHeader(text string, strategy HeaderStrategy, diag *Diagnostics) Header {
	h := Header{
		InvoiceNo:    extractInvoiceNumber(text, strategy),
		InvoiceDate:  invoiceDateRe.FindString(text),
		BuyerDetails: extractBuyerDetails(text),
	}
	if h.InvoiceNo == "" {
		diag.Warnf("invoice number not found")
	}
	if h.InvoiceDate == "" {
		diag.Warnf("invoice date not found")
	}
	return h
}

func extractInvoiceNumber(text string, strategy HeaderStrategy) string {
	if strategy == HeaderLongestMatch {
		return longestInvoiceNumber(text)
	}
	for _, re := range invoiceNoPatterns {
		if token, ok := matchToken(re, text); ok {
			return token
		}
	}
	return ""
}

// matchToken returns the labeled capture when the pattern has one,
// otherwise the whole match.
func matchToken(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if len(m) > 1 && m[1] != "" {
		return strings.TrimSpace(m[1]), true
	}
	return strings.TrimSpace(m[0]), true
}

func longestInvoiceNumber(text string) string {
	best := ""
	bestPos := -1
	for _, re := range invoiceNoPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			if len(loc) > 3 && loc[2] >= 0 {
				start, end = loc[2], loc[3]
			}
			token := strings.TrimSpace(text[start:end])
			if len(token) > len(best) || (len(token) == len(best) && start < bestPos) {
				best = token
				bestPos = start
			}
		}
	}
	return best
}

func extractBuyerDetails(text string) string {
	for _, re := range buyerPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return whitespaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		}
	}
	return ""
}
