package totp

import "errors"

var (
	// ErrInvalidEncoding is returned when a base32 secret contains characters
	// outside the RFC 4648 alphabet or has inconsistent padding.
	ErrInvalidEncoding = errors.New("invalid base32 secret encoding")
	// ErrInvalidSecret is returned when an empty secret is passed to code generation.
	ErrInvalidSecret = errors.New("secret must not be empty")
	// ErrSecretGeneration is returned when random secret generation fails.
	ErrSecretGeneration = errors.New("failed to generate secret")
	// ErrInvalidEncryptionKey is returned when the encryption key is empty.
	ErrInvalidEncryptionKey = errors.New("encryption key must not be empty")
	// ErrDecryptionFailed is returned when an encrypted secret cannot be decrypted.
	ErrDecryptionFailed = errors.New("failed to decrypt secret")
	// ErrInvalidCodeCount is returned when requesting a non-positive number of recovery codes.
	ErrInvalidCodeCount = errors.New("recovery code count must be positive")
)
