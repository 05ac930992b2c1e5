package util

import (
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// GenerateOfficeCode returns a fresh value for the daily office code.
func GenerateOfficeCode() string {
	return uuid.NewString()
}

// QRCodePNG renders code as a PNG QR image.
func QRCodePNG(code string) ([]byte, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
