package invoiceparse

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleInvoiceText = `Tax Invoice
Invoice No. INV/2024-25/0042
Dated 12-Mar-24
Buyer (Bill to)
Sharma Hardware Stores, Pune
GSTIN/UIN: 27ABCDE1234F1Z5
Sl Description of Goods HSN/SAC Quantity Rate per Disc. Amount
1 Brass Hinge (satin finish) 8302 10 PCS 45.00 PCS 5 % 427.50
2 Door Stopper 8302 6 PCS 30.00 PCS 0 % 180.00
TOTAL 607.50
CGST 15.19
SGST 15.19
Authorised Signatory`

func TestExtractFullInvoice(t *testing.T) {
	extractor := NewExtractor(Options{})

	record, warnings := extractor.Extract(sampleInvoiceText)

	assert.Equal(t, "INV/2024-25/0042", record.InvoiceNo)
	assert.Equal(t, "12-Mar-24", record.InvoiceDate)
	assert.Equal(t, "Sharma Hardware Stores, Pune", record.BuyerDetails)

	assert.Len(t, record.Products, 2)
	assert.Equal(t, "Brass Hinge", record.Products[0].ProductName)
	assert.Equal(t, "(satin finish)", record.Products[0].Description)
	assert.Equal(t, "427.50", record.Products[0].Amount)
	assert.Equal(t, "Door Stopper", record.Products[1].ProductName)

	assert.Equal(t, "607.50", record.Total)
	assert.Equal(t, "15.19", record.CGST)
	assert.Equal(t, "15.19", record.SGST)
	assert.Equal(t, "0.00", record.IGST)
	assert.Equal(t, "0.00", record.Discount)
	assert.Equal(t, "637.88", record.GrandTotal)
	assert.Equal(t, "six hundred thirty seven rupees eighty eight paise only", record.AmountInWords)

	assert.Empty(t, warnings)
}

func TestExtractIsIdempotent(t *testing.T) {
	extractor := NewExtractor(Options{})

	first, _ := extractor.Extract(sampleInvoiceText)
	second, _ := extractor.Extract(sampleInvoiceText)

	assert.Equal(t, first, second)
}

func TestExtractMonetaryFieldFormat(t *testing.T) {
	moneyRe := regexp.MustCompile(`^\d+\.\d{2}$`)
	extractor := NewExtractor(Options{})

	record, _ := extractor.Extract(sampleInvoiceText)

	for _, f := range []string{record.CGST, record.SGST, record.IGST, record.Total, record.Discount, record.GrandTotal} {
		assert.Regexp(t, moneyRe, f)
	}
	for _, item := range record.Products {
		for _, f := range []string{item.Amount, item.Rate, item.WSP} {
			if f != "" {
				assert.Regexp(t, moneyRe, f)
			}
		}
	}
}

func TestExtractWithoutItemTable(t *testing.T) {
	extractor := NewExtractor(Options{})

	record, warnings := extractor.Extract("Invoice No. 8812 Dated 5-Jan-24 Total 120.00")

	assert.Empty(t, record.Products)
	assert.NotNil(t, record.Products)
	assert.Equal(t, "120.00", record.Total)
	assert.Contains(t, warnings, "no line item table detected")
}

func TestExtractEmptyText(t *testing.T) {
	extractor := NewExtractor(Options{})

	record, warnings := extractor.Extract("")

	assert.Empty(t, record.InvoiceNo)
	assert.Empty(t, record.Products)
	assert.Equal(t, "0.00", record.GrandTotal)
	assert.NotEmpty(t, warnings)
}
