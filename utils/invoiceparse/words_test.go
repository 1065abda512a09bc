package invoiceparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "one thousand two hundred thirty four rupees fifty six paise only", AmountInWords("1234.56"))
	assert.Equal(t, "zero rupees only", AmountInWords("0.00"))
	assert.Equal(t, "one crore rupees only", AmountInWords("10000000.00"))
	assert.Equal(t, "two lakh fifty thousand rupees only", AmountInWords("2,50,000.00"))
	assert.Equal(t, "ten rupees five paise only", AmountInWords("10.05"))
	assert.Empty(t, AmountInWords("garbage"))
}
