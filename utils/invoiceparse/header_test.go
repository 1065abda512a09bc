package invoiceparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHeader(t *testing.T) {
	text := `
		Tax Invoice
		Invoice No. GST/2024-25/0042
		Dated 12-Mar-24
	`

	diag := &Diagnostics{}
	h := ExtractHeader(text, HeaderFirstMatch, diag)

	assert.Equal(t, "GST/2024-25/0042", h.InvoiceNo)
	assert.Equal(t, "12-Mar-24", h.InvoiceDate)
	assert.Empty(t, diag.Warnings)
}

func TestExtractHeaderMissingFields(t *testing.T) {
	diag := &Diagnostics{}
	h := ExtractHeader("just some prose with no identifiers", HeaderFirstMatch, diag)

	assert.Empty(t, h.InvoiceNo)
	assert.Empty(t, h.InvoiceDate)
	assert.Len(t, diag.Warnings, 2)
}

func TestInvoiceNumberStrategies(t *testing.T) {
	// the permissive slash pattern stops at "45/23-24"; the full token is
	// only recovered by the longest-match scan
	text := "Invoice No. 7 reference 45/23-24/890 Dated 1-Apr-24"

	assert.Equal(t, "45/23-24", extractInvoiceNumber(text, HeaderFirstMatch))
	assert.Equal(t, "45/23-24/890", extractInvoiceNumber(text, HeaderLongestMatch))
}

func TestInvoiceNumberLabelFallback(t *testing.T) {
	text := "Invoice No. 100234 Dated 5-Jan-24"
	assert.Equal(t, "100234", extractInvoiceNumber(text, HeaderFirstMatch))
}

func TestInvoiceDateFormats(t *testing.T) {
	assert.Equal(t, "12-Mar-24", invoiceDateRe.FindString("Dated 12-Mar-24"))
	assert.Equal(t, "1/Jan/2024", invoiceDateRe.FindString("Dated 1/Jan/2024"))
	assert.Empty(t, invoiceDateRe.FindString("Dated 12/03/2024 only numeric"))
}

func TestExtractBuyerDetails(t *testing.T) {
	text := `Buyer (Bill to)
		Sharma Hardware Stores
		12 MG Road, Pune
		GSTIN/UIN: 27ABCDE1234F1Z5`

	assert.Equal(t, "Sharma Hardware Stores 12 MG Road, Pune", extractBuyerDetails(text))
	assert.Empty(t, extractBuyerDetails("no buyer block here"))
}
