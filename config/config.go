package config

import (
	"os"

	"github.com/pdftodata/invoice-extraction/utils/invoiceparse"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	MaxFileSize       int64

	// HeaderMatchStrategy picks how the invoice number cascade resolves
	// competing matches: "first_match" or "longest_match".
	HeaderMatchStrategy invoiceparse.HeaderStrategy

	// DiscountPriority picks which discount label family wins when both
	// appear: "discount_ac" or "trade_discount".
	DiscountPriority invoiceparse.DiscountPriority
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	headerStrategy := invoiceparse.HeaderStrategy(os.Getenv("HEADER_MATCH_STRATEGY"))
	if headerStrategy != invoiceparse.HeaderLongestMatch {
		headerStrategy = invoiceparse.HeaderFirstMatch
	}

	discountPriority := invoiceparse.DiscountPriority(os.Getenv("DISCOUNT_PRIORITY"))
	if discountPriority != invoiceparse.DiscountTradeFirst {
		discountPriority = invoiceparse.DiscountGenericFirst
	}

	return &Config{
		ServerPort:          serverPort,
		TesseractDataPath:   tesseractDataPath,
		MaxFileSize:         10 * 1024 * 1024, // 10 MB
		HeaderMatchStrategy: headerStrategy,
		DiscountPriority:    discountPriority,
	}
}

// ParserOptions builds the engine options from the loaded configuration.
func (c *Config) ParserOptions() invoiceparse.Options {
	return invoiceparse.Options{
		HeaderStrategy:   c.HeaderMatchStrategy,
		DiscountPriority: c.DiscountPriority,
	}
}
