package main

import (
	"log"

	"github.com/pdftodata/invoice-extraction/client"
	"github.com/pdftodata/invoice-extraction/config"
	"github.com/pdftodata/invoice-extraction/handler"
	"github.com/pdftodata/invoice-extraction/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	invoiceService := service.NewInvoiceService(tesseractClient, pdfProcessor, cfg.ParserOptions())

	// Initialize handler layer
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Invoice Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		invoice := api.Group("/invoice")
		{
			invoice.POST("/extract", invoiceHandler.Extract)
			invoice.POST("/extract/batch", invoiceHandler.ExtractBatch)
		}
	}

	// Start server
	log.Printf("Starting Invoice Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
