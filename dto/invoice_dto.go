package dto

// LineItem is one decoded product row from the invoice table.
// All monetary fields are decimal strings with exactly two fractional
// digits and no thousands separators; absent columns stay empty.
type LineItem struct {
	LineNumber  string `json:"line_number"`
	ProductName string `json:"product_name"`
	Description string `json:"description"`
	HSNSAC      string `json:"hsn_sac"`
	Size        string `json:"size"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Discount    string `json:"discount"` // "N%" when present
	WSP         string `json:"wsp"`
	Amount      string `json:"amount"`
}

// TaxBreakdown holds the extracted GST components.
type TaxBreakdown struct {
	CGST string `json:"cgst"`
	SGST string `json:"sgst"`
	IGST string `json:"igst"`
}

// InvoiceRecord is the final structured output for one document.
// This is the canonical JSON shape written per invoice.
type InvoiceRecord struct {
	InvoiceNo     string     `json:"invoice_no"`
	InvoiceDate   string     `json:"invoice_date"`
	BuyerDetails  string     `json:"buyer_details,omitempty"`
	Products      []LineItem `json:"products"`
	CGST          string     `json:"cgst"`
	SGST          string     `json:"sgst"`
	IGST          string     `json:"igst"`
	Total         string     `json:"total"`
	Discount      string     `json:"discount"`
	RoundOff      string     `json:"round_off,omitempty"`
	GrandTotal    string     `json:"grand_total"`
	AmountInWords string     `json:"amount_in_words,omitempty"`
}
