package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// InvoiceExtractResponse is the single-document response structure
type InvoiceExtractResponse struct {
	Filename    string        `json:"filename"`
	Invoice     InvoiceRecord `json:"invoice"`
	Warnings    []string      `json:"warnings,omitempty"`
	ProcessedAt string        `json:"processed_at"`
}

// BatchItemResult holds the outcome for one document in a batch.
// A failed document carries Error and a nil Invoice; it never
// aborts the rest of the batch.
type BatchItemResult struct {
	Filename string         `json:"filename"`
	Invoice  *InvoiceRecord `json:"invoice,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// BatchExtractResponse is the multi-document response structure
type BatchExtractResponse struct {
	Results     []BatchItemResult `json:"results"`
	ProcessedAt string            `json:"processed_at"`
}
