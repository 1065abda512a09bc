package invoiceparse

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// AmountInWords renders a monetary amount as Indian-system rupee words,
// e.g. "1234.56" -> "one thousand two hundred thirty four rupees fifty six
// paise only". Returns empty for amounts that do not parse.
func AmountInWords(amount string) string {
	d, err := decimal.NewFromString(cleanAmount(amount))
	if err != nil || d.IsNegative() {
		return ""
	}

	rupees := d.IntPart()
	paise := d.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	var parts []string
	if rupees == 0 {
		parts = append(parts, "zero rupees")
	} else {
		parts = append(parts, indianNumberWords(rupees), "rupees")
	}
	if paise > 0 {
		parts = append(parts, indianNumberWords(paise), "paise")
	}
	parts = append(parts, "only")
	return strings.Join(parts, " ")
}

// indianNumberWords spells a positive integer using crore/lakh grouping.
func indianNumberWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	var parts []string
	appendUnit := func(v int64, unit string) {
		if v > 0 {
			parts = append(parts, indianNumberWords(v), unit)
		}
	}

	appendUnit(n/10000000, "crore")
	n %= 10000000
	appendUnit(n/100000, "lakh")
	n %= 100000
	appendUnit(n/1000, "thousand")
	n %= 1000
	appendUnit(n/100, "hundred")
	n %= 100

	if n > 0 {
		parts = append(parts, twoDigitWords(n))
	}
	return strings.Join(parts, " ")
}

func twoDigitWords(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + " " + onesWords[n%10]
}
