package qrcode

import (
	"encoding/base64"
	"errors"

	qr "github.com/skip2/go-qrcode"
)

// DefaultSize is the recommended pixel size for web and mobile scanning.
const DefaultSize = 256

// Generate renders content as a PNG QR code of size x size pixels with
// medium error correction. A non-positive size falls back to DefaultSize
// only when zero; negative sizes are rejected.
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}

	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}
	return png, nil
}

// GenerateBase64Image renders content as a base64-encoded PNG data URI
// suitable for embedding in an <img> tag.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
