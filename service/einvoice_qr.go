package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// EInvoiceQRData carries the header fields we care about from a GST
// e-invoice QR payload. DocNo/DocDt are the field names used by the IRP
// signed payload; Irn identifies the registered invoice.
type EInvoiceQRData struct {
	Irn         string      `json:"Irn"`
	DocNo       string      `json:"DocNo"`
	DocDt       string      `json:"DocDt"`
	SellerGstin string      `json:"SellerGstin"`
	BuyerGstin  string      `json:"BuyerGstin"`
	TotInvVal   json.Number `json:"TotInvVal"`
}

// decodeEInvoiceQR scans page images for a QR code and decodes a GST
// e-invoice payload from the first one that parses. Used only to backfill
// a missing invoice number or date; any failure is non-fatal.
func decodeEInvoiceQR(images []image.Image) (*EInvoiceQRData, error) {
	reader := qrcode.NewQRCodeReader()

	for _, img := range images {
		bmp, err := gozxing.NewBinaryBitmapFromImage(img)
		if err != nil {
			continue
		}

		result, err := reader.Decode(bmp, nil)
		if err != nil {
			continue
		}

		data, err := parseEInvoicePayload(result.GetText())
		if err != nil {
			continue
		}
		return data, nil
	}
	return nil, fmt.Errorf("no decodable e-invoice QR found")
}

// parseEInvoicePayload accepts either the signed JWT-style payload the IRP
// issues (header.payload.signature, with the invoice JSON under "data") or
// a plain JSON object.
func parseEInvoicePayload(text string) (*EInvoiceQRData, error) {
	text = strings.TrimSpace(text)

	if parts := strings.Split(text, "."); len(parts) == 3 {
		decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("failed to decode QR payload segment: %w", err)
		}

		var claims struct {
			Data string `json:"data"`
		}
		if err := json.Unmarshal(decoded, &claims); err != nil {
			return nil, fmt.Errorf("failed to parse QR claims: %w", err)
		}
		text = claims.Data
	}

	var data EInvoiceQRData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("failed to parse e-invoice QR JSON: %w", err)
	}
	if data.DocNo == "" && data.Irn == "" {
		return nil, fmt.Errorf("QR payload carries no invoice identifiers")
	}
	return &data, nil
}
