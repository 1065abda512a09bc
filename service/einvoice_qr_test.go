package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEInvoicePayloadPlainJSON(t *testing.T) {
	data, err := parseEInvoicePayload(`{"Irn":"a1b2c3","DocNo":"INV-42","DocDt":"12/03/2024","SellerGstin":"27ABCDE1234F1Z5"}`)

	assert.NoError(t, err)
	assert.Equal(t, "INV-42", data.DocNo)
	assert.Equal(t, "12/03/2024", data.DocDt)
	assert.Equal(t, "27ABCDE1234F1Z5", data.SellerGstin)
}

func TestParseEInvoicePayloadSignedJWT(t *testing.T) {
	claims := `{"data":"{\"Irn\":\"a1b2c3\",\"DocNo\":\"INV-42\",\"DocDt\":\"12/03/2024\"}"}`
	payload := "header." + base64.RawURLEncoding.EncodeToString([]byte(claims)) + ".signature"

	data, err := parseEInvoicePayload(payload)

	assert.NoError(t, err)
	assert.Equal(t, "INV-42", data.DocNo)
	assert.Equal(t, "12/03/2024", data.DocDt)
}

func TestParseEInvoicePayloadRejectsJunk(t *testing.T) {
	_, err := parseEInvoicePayload("not a qr payload")
	assert.Error(t, err)

	_, err = parseEInvoicePayload(`{"unrelated":"json"}`)
	assert.Error(t, err)
}
