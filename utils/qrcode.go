package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRCode renders a PNG pointing at the public menu URL and writes
// it under uploads/qr-codes. Returns the public path of the stored image.
func GenerateQRCode(menuURL, slug string) (string, error) {
	png, err := qrcode.Encode(menuURL, qrcode.Medium, 300)
	if err != nil {
		return "", err
	}

	uploadDir := filepath.Join("uploads", "qr-codes")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("qr-%s-%d.png", slug, time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(uploadDir, fileName), png, 0644); err != nil {
		return "", err
	}

	return "/uploads/qr-codes/" + fileName, nil
}
