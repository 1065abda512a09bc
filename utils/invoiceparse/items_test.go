package invoiceparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRowWithDiscount(t *testing.T) {
	item, ok := decodeRow("1 Widget-A 1234 5 PCS 100.00 PCS 10 % 450.00", DefaultRuleSet())

	assert.True(t, ok)
	assert.Equal(t, "1", item.LineNumber)
	assert.Equal(t, "Widget-A", item.ProductName)
	assert.Equal(t, "1234", item.HSNSAC)
	assert.Equal(t, "5", item.Quantity)
	assert.Equal(t, "100.00", item.Rate)
	assert.Equal(t, "10%", item.Discount)
	assert.Equal(t, "450.00", item.Amount)
}

func TestDecodeRowWSPLayout(t *testing.T) {
	item, ok := decodeRow("3 Cotton Shirt 599.00 40x60 12 Pcs 450.00 5 % 5130.00", DefaultRuleSet())

	assert.True(t, ok)
	assert.Equal(t, "3", item.LineNumber)
	assert.Equal(t, "Cotton Shirt", item.ProductName)
	assert.Equal(t, "599.00", item.WSP)
	assert.Equal(t, "40x60", item.Size)
	assert.Equal(t, "12", item.Quantity)
	assert.Equal(t, "5%", item.Discount)
	assert.Equal(t, "5130.00", item.Amount)
	assert.Empty(t, item.HSNSAC)
}

func TestDecodeRowShortLayout(t *testing.T) {
	item, ok := decodeRow("2 Consulting Charges 9983 12,500.00", DefaultRuleSet())

	assert.True(t, ok)
	assert.Equal(t, "9983", item.HSNSAC)
	assert.Equal(t, "12500.00", item.Amount)
}

func TestDecodeRowNoRuleMatches(t *testing.T) {
	_, ok := decodeRow("1 dangling fragment without amounts", DefaultRuleSet())
	assert.False(t, ok)
}

func TestParseLineItemsContinuation(t *testing.T) {
	block := `Sl Description of Goods HSN/SAC Quantity Rate per Disc. Amount
1 Steel Bracket (zinc plated) 7318 4 PCS 100.00 PCS 10 % 360.00
with extended warranty

42
2 Door Stopper 8302 6 PCS 30.00 PCS 0 % 180.00`

	diag := &Diagnostics{}
	items := ParseLineItems(block, DefaultRuleSet(), diag)

	assert.Len(t, items, 2)
	assert.Equal(t, "Steel Bracket", items[0].ProductName)
	assert.Equal(t, "(zinc plated) | with extended warranty", items[0].Description)
	assert.Equal(t, "Door Stopper", items[1].ProductName)
	assert.Empty(t, items[1].Description)
}

func TestParseLineItemsContinuationStopsAtTerminator(t *testing.T) {
	block := `1 Steel Bracket 7318 4 PCS 100.00 PCS 10 % 360.00
Amount Chargeable (in words)
should never be absorbed`

	items := ParseLineItems(block, DefaultRuleSet(), &Diagnostics{})

	assert.Len(t, items, 1)
	assert.Empty(t, items[0].Description)
}

func TestParseLineItemsDeduplication(t *testing.T) {
	block := `1 Steel Bracket 7318 4 PCS 100.00 PCS 10 % 360.00
1 Steel Bracket 7318 4 PCS 100.00 PCS 10 % 360.00`

	items := ParseLineItems(block, DefaultRuleSet(), &Diagnostics{})

	assert.Len(t, items, 1)
}

func TestParseLineItemsSkipsUnmatchedRows(t *testing.T) {
	block := `1 some row the rules cannot decode
2 Door Stopper 8302 6 PCS 30.00 PCS 0 % 180.00`

	diag := &Diagnostics{}
	items := ParseLineItems(block, DefaultRuleSet(), diag)

	assert.Len(t, items, 1)
	assert.Equal(t, "2", items[0].LineNumber)
	assert.Len(t, diag.Warnings, 1)
}

func TestParseLineItemsEmptyBlock(t *testing.T) {
	items := ParseLineItems("", DefaultRuleSet(), &Diagnostics{})
	assert.Empty(t, items)
	assert.NotNil(t, items)
}
