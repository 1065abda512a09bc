package invoiceparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateItemBlock(t *testing.T) {
	text := `Some header prose
Sl Description of Goods HSN/SAC Amount
1 Brass Hinge 8302 427.50
2 Door Stopper 8302 180.00
TOTAL 607.50
Bank details follow`

	block := LocateItemBlock(text, DefaultRuleSet())

	assert.True(t, len(block) > 0)
	assert.Contains(t, block, "Brass Hinge")
	assert.Contains(t, block, "Door Stopper")
	assert.NotContains(t, block, "TOTAL")
	assert.NotContains(t, block, "Bank details")
}

func TestLocateItemBlockNearestEndMarkerWins(t *testing.T) {
	text := `Sl Particulars Amount
1 Consulting Charges 9983 12500.00
OUTPUT CGST 9 %
Grand Total 13625.00`

	block := LocateItemBlock(text, DefaultRuleSet())

	// OUTPUT sits closer to the start than Grand Total; end markers are
	// picked by position, not list order
	assert.Contains(t, block, "Consulting Charges")
	assert.NotContains(t, block, "OUTPUT")
	assert.NotContains(t, block, "Grand Total")
}

func TestLocateItemBlockRunsToEndOfText(t *testing.T) {
	text := `Sl Particulars
1 Consulting Charges 9983 12500.00`

	block := LocateItemBlock(text, DefaultRuleSet())

	assert.Contains(t, block, "Consulting Charges")
}

func TestLocateItemBlockNoStartMarker(t *testing.T) {
	assert.Empty(t, LocateItemBlock("no table here\nTOTAL 10.00", DefaultRuleSet()))
}
