package service

// QRCodeService defines the interface for generating QR codes pointing at a
// commerce's public page.
type QRCodeService interface {
	// GeneratePageQR renders a PNG QR code encoding the given public URL.
	GeneratePageQR(pageURL string) ([]byte, error)
}
