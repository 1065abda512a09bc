package dto

import (
	"errors"
	"mime/multipart"
	"strings"
)

// InvoiceExtractRequest represents a single-invoice extraction request
type InvoiceExtractRequest struct {
	File     *multipart.FileHeader
	Password string
}

// Validate performs basic validation on the request
func (r *InvoiceExtractRequest) Validate() error {
	if r.File == nil {
		return errors.New("file is required")
	}
	if !strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") {
		return errors.New("invalid file type. Supported: PDF")
	}
	return nil
}

// BatchExtractRequest represents a multi-invoice extraction request
type BatchExtractRequest struct {
	Files []*multipart.FileHeader `form:"files[]" binding:"required"`
}

// Validate performs basic validation on the request
func (r *BatchExtractRequest) Validate() error {
	if len(r.Files) == 0 {
		return errors.New("at least one file is required")
	}
	for _, f := range r.Files {
		if !strings.HasSuffix(strings.ToLower(f.Filename), ".pdf") {
			return errors.New("invalid file type for " + f.Filename + ". Supported: PDF")
		}
	}
	return nil
}
