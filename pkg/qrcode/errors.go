package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when there is nothing to encode.
	ErrEmptyContent = errors.New("qr code content must not be empty")
	// ErrInvalidSize is returned for a non-positive image size.
	ErrInvalidSize = errors.New("qr code size must be positive")
	// ErrGenerationFailed is returned when the underlying encoder fails,
	// e.g. because the content exceeds QR code capacity.
	ErrGenerationFailed = errors.New("failed to generate qr code")
)
