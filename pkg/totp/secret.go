package totp

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"strings"
)

// secretSize is the length of generated secrets in bytes (160 bits),
// the size recommended by RFC 4226.
const secretSize = 20

// GenerateSecretKey creates a cryptographically random shared secret.
// The returned bytes are raw keying material; use EncodeSecret for the
// text form shown to users and authenticator apps.
func GenerateSecretKey() ([]byte, error) {
	b := make([]byte, secretSize)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Join(ErrSecretGeneration, err)
	}
	return b, nil
}

// EncodeSecret encodes a raw secret as RFC 4648 base32 with '=' padding
// to a multiple of 8 characters. Total function; never fails.
func EncodeSecret(secret []byte) string {
	return base32.StdEncoding.EncodeToString(secret)
}

// DecodeSecret decodes a base32-encoded secret back to raw bytes.
// Lowercase input and surrounding whitespace are accepted. Returns
// ErrInvalidEncoding for characters outside the alphabet or inconsistent
// padding. DecodeSecret is the exact left inverse of EncodeSecret.
func DecodeSecret(text string) ([]byte, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	raw, err := base32.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncoding, err)
	}
	return raw, nil
}
