package invoiceparse

import "regexp"

// RowRule is one fixed row layout. The pattern is anchored at both ends and
// must consume the whole whitespace-joined line to count as a match.
type RowRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// RuleSet bundles everything layout-specific: table markers, row layouts,
// continuation terminators and tax label spellings. A new vendor layout is a
// new entry here, not a new code path. Order is priority: stricter rules and
// preferred labels come first.
type RuleSet struct {
	StartMarkers []string
	EndMarkers   []string
	RowRules     []RowRule

	// ContinuationStops are lowercase phrases that end description
	// carry-over scanning when found anywhere in a line.
	ContinuationStops []string

	CGSTLabels []string
	SGSTLabels []string
	IGSTLabels []string
}

// DefaultRuleSet covers the vendor layouts seen so far. Rules with more
// anchored literal tokens sit above looser ones so a permissive rule never
// steals fields that belong to a stricter shape.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		StartMarkers: []string{
			"Sl Description of Goods",
			"Sl Particulars Amount",
			"Sl Particulars",
		},
		EndMarkers: []string{
			"OUTPUT",
			"Out-Put",
			"TOTAL",
			"S-GST",
			"C-GST",
			"Grand Total",
			"Amount Chargeable",
			"Payable Amount",
		},
		RowRules: []RowRule{
			{
				Name:    "hsn_qty_rate_disc",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<hsn>\d+)\s+(?P<qty>\d+)\s+[A-Z]+\s+(?P<rate>[0-9,]+\.\d{2})\s+[A-Z]+\s+(?P<discount>\d+)\s+%\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				Name:    "hsn_altqty_qty_rate_disc",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<hsn>\d+)\s+(?P<altqty>[0-9.]+)\s+[A-Z]+\s+(?P<qty>[0-9.]+)\s+[A-Z]+\s+(?P<rate>[0-9,]+\.\d{2})\s+[A-Z]+\s+(?P<discount>\d+)\s+%\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				Name:    "hsn_gstpct_qty_rate",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<hsn>\d{4,})\s+(?P<gst>\d+)\s+%\s+(?P<qty>[0-9.]+)\s+[A-Za-z]+\s+(?P<rate>[0-9,]+\.\d{2})\s+[A-Za-z]+\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				Name:    "hsn_qty_rate",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<hsn>\d{4,})\s+(?P<qty>\d+)\s+[A-Za-z]+\s+(?P<rate>[0-9,]+\.\d{2})\s+[A-Za-z]+\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				Name:    "hsn_altqty_qty_rate",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<hsn>\d{4,})\s+(?P<altqty>\d+)\s+[A-Za-z]+\s+(?P<qty>\d+)\s+[A-Za-z]+\s+(?P<rate>[0-9,]+\.\d{2})\s+[A-Za-z]+\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				// size restricted to dimension-like tokens; must sit above the
				// free-form size rule or that one swallows everything.
				// [PсС] tolerates OCR reading the P of "Pcs" as a Cyrillic letter.
				Name:    "wsp_size_strict",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<wsp>[0-9,]+\.\d{2})\s+(?P<size>[0-9xX*/\-]+)\s+(?P<qty>\d+)\s+[PсС][a-zA-Z]+\s+(?P<rate>[0-9,]+\.\d{2})\s+(?P<discount>\d+)\s+%\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				Name:    "wsp_size",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<wsp>[0-9,]+\.\d{2})\s+(?P<size>\S+)\s+(?P<qty>\d+)\s+[PсС][a-zA-Z]+\s+(?P<rate>[0-9,]+\.\d{2})\s+(?P<discount>\d+)\s+%\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				Name:    "hsn_qty_rate_disc_tight",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<hsn>\d+)\s+(?P<qty>\d+)\s+[A-Z]+\s+(?P<rate>[0-9,]+\.\d{2})\s+[A-Z]+\s+(?P<discount>\d+)%\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				Name:    "hsn_amount",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<hsn>\d{4,})\s+(?P<amount>[0-9,]+\.\d{2})$`),
			},
			{
				Name:    "amount_hsn",
				Pattern: regexp.MustCompile(`^(?P<number>\d+)\s+(?P<desc>.+?)\s+(?P<amount>[0-9,]+\.\d{2})\s+(?P<hsn>\d+)$`),
			},
		},
		ContinuationStops: []string{
			"total",
			"output",
			"out-put",
			"cgst",
			"sgst",
			"igst",
			"hsn/sac",
			"hsn",
			"sac",
			"discount",
			"round off",
			"round-off",
			"amount chargeable",
			"authorised signatory",
			"e. & o.e",
			"taxable value",
		},
		CGSTLabels: []string{"CGST", "C-GST", "OUTPUT CGST"},
		SGSTLabels: []string{"SGST", "S-GST", "OUTPUT SGST"},
		IGSTLabels: []string{"IGST"},
	}
}
