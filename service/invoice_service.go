package service

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pdftodata/invoice-extraction/client"
	"github.com/pdftodata/invoice-extraction/dto"
	"github.com/pdftodata/invoice-extraction/utils/invoiceparse"
)

// InvoiceService runs the full pipeline for one or more invoice PDFs:
// text acquisition (with OCR fallback for scanned documents), the
// extraction engine, and e-invoice QR backfill for missing header fields.
type InvoiceService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	extractor       *invoiceparse.Extractor
}

func NewInvoiceService(
	tesseractClient *client.TesseractClient,
	pdfProcessor PDFProcessor,
	opts invoiceparse.Options,
) *InvoiceService {
	return &InvoiceService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		extractor:       invoiceparse.NewExtractor(opts),
	}
}

// ExtractFromBytes processes one invoice PDF. Failure to obtain any text at
// all is the only fatal outcome; everything past acquisition degrades to
// empty fields plus warnings.
func (s *InvoiceService) ExtractFromBytes(filename string, data []byte, password string) (*dto.InvoiceRecord, []string, error) {
	var images []image.Image

	text, err := s.pdfProcessor.ExtractText(data, password)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filename, err)
	}

	// Scanned invoice: no usable text layer, OCR the page images instead.
	if len(strings.TrimSpace(text)) < 20 {
		log.Printf("PDF %s has minimal text, attempting image-based OCR", filename)

		images, err = s.pdfProcessor.ExtractImages(data, password)
		if err != nil {
			return nil, nil, fmt.Errorf("no text layer and image extraction failed for %s: %w", filename, err)
		}
		if len(images) == 0 {
			return nil, nil, fmt.Errorf("no text layer and no page images in %s", filename)
		}

		var combined strings.Builder
		for _, img := range images {
			tempImgFile, err := saveImageToTempFile(img)
			if err != nil {
				log.Printf("Failed to save temporary image for OCR: %v", err)
				continue
			}

			pageText, _, ocrErr := s.tesseractClient.ExtractTextAndQuality(tempImgFile)
			os.Remove(tempImgFile)
			if ocrErr != nil {
				log.Printf("OCR failed for a page in %s: %v", filename, ocrErr)
				continue
			}

			combined.WriteString(pageText)
			combined.WriteString("\n")
		}
		text = combined.String()
	}

	if len(strings.TrimSpace(text)) == 0 {
		return nil, nil, fmt.Errorf("no text could be extracted from %s", filename)
	}

	record, warnings := s.extractor.Extract(text)

	// A GST e-invoice QR carries the invoice number and date; use it to
	// backfill what the text cascade missed.
	if record.InvoiceNo == "" || record.InvoiceDate == "" {
		if images == nil {
			images, err = s.pdfProcessor.ExtractImages(data, password)
			if err != nil {
				log.Printf("Image extraction for QR backfill failed for %s: %v", filename, err)
			}
		}
		if qr, qrErr := decodeEInvoiceQR(images); qrErr == nil {
			if record.InvoiceNo == "" && qr.DocNo != "" {
				record.InvoiceNo = qr.DocNo
				log.Printf("Backfilled invoice number from e-invoice QR for %s", filename)
			}
			if record.InvoiceDate == "" && qr.DocDt != "" {
				record.InvoiceDate = qr.DocDt
				log.Printf("Backfilled invoice date from e-invoice QR for %s", filename)
			}
		}
	}

	for _, w := range warnings {
		log.Printf("Warning for %s: %s", filename, w)
	}

	return &record, warnings, nil
}

// ExtractFromFile processes one uploaded invoice PDF.
func (s *InvoiceService) ExtractFromFile(fileHeader *multipart.FileHeader, password string) (*dto.InvoiceRecord, []string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", fileHeader.Filename, err)
	}

	return s.ExtractFromBytes(fileHeader.Filename, data, password)
}

// ExtractBatch processes each uploaded document independently and
// concurrently. One document failing never affects the others.
func (s *InvoiceService) ExtractBatch(req *dto.BatchExtractRequest) *dto.BatchExtractResponse {
	results := make([]dto.BatchItemResult, len(req.Files))
	var wg sync.WaitGroup

	for i, fileHeader := range req.Files {
		wg.Add(1)
		go func(idx int, file *multipart.FileHeader) {
			defer wg.Done()

			record, warnings, err := s.ExtractFromFile(file, "")
			result := dto.BatchItemResult{
				Filename: file.Filename,
				Warnings: warnings,
			}
			if err != nil {
				log.Printf("Failed to process %s: %v", file.Filename, err)
				result.Error = err.Error()
			} else {
				result.Invoice = record
			}
			results[idx] = result
		}(i, fileHeader)
	}

	wg.Wait()

	return &dto.BatchExtractResponse{
		Results:     results,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}
}

// saveImageToTempFile saves an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "invoice-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
