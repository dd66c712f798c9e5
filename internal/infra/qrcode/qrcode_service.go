package qrcode

import (
	"fmt"

	"cityhub/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePageQR renders a PNG QR code encoding a commerce's public page URL
func (s *qrcodeService) GeneratePageQR(pageURL string) ([]byte, error) {
	if pageURL == "" {
		return nil, fmt.Errorf("page URL is empty")
	}

	qrCode, err := qrcode.New(pageURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
