package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/pdftodata/invoice-extraction/dto"
	"github.com/pdftodata/invoice-extraction/service"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// Extract handles the POST /invoice/extract endpoint
func (h *InvoiceHandler) Extract(c *gin.Context) {
	log.Println("Received invoice extraction request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	request := &dto.InvoiceExtractRequest{
		File:     fileHeader,
		Password: c.PostForm("password"),
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	record, warnings, err := h.invoiceService.ExtractFromFile(request.File, request.Password)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to extract invoice", err)
		return
	}

	log.Printf("Invoice extraction completed for %s", fileHeader.Filename)
	c.JSON(http.StatusOK, dto.InvoiceExtractResponse{
		Filename:    fileHeader.Filename,
		Invoice:     *record,
		Warnings:    warnings,
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// ExtractBatch handles the POST /invoice/extract/batch endpoint
func (h *InvoiceHandler) ExtractBatch(c *gin.Context) {
	log.Println("Received batch invoice extraction request")

	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	request := &dto.BatchExtractRequest{
		Files: form.File["files[]"],
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	log.Printf("Processing %d files", len(request.Files))

	response := h.invoiceService.ExtractBatch(request)

	log.Println("Batch invoice extraction completed")
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *InvoiceHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
