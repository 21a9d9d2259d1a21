package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// encryptionKeySize is the AES-256 key length.
const encryptionKeySize = 32

// GenerateEncryptionKey creates a random 32-byte key for secret encryption.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, encryptionKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrSecretGeneration, err)
	}
	return key, nil
}

// EncryptSecret encrypts a raw TOTP secret with AES-256-GCM for storage at
// rest and returns it base64-encoded with the nonce prepended. The key may
// be of any length; an AES-256 key is derived from it via HKDF-SHA256.
func EncryptSecret(secret, key []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrInvalidSecret
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Join(ErrSecretGeneration, err)
	}

	sealed := gcm.Seal(nonce, nonce, secret, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptSecret reverses EncryptSecret. Returns ErrDecryptionFailed when
// the payload is malformed, the key is wrong, or the ciphertext was
// tampered with.
func DecryptSecret(encrypted string, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, ErrDecryptionFailed
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	secret, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return secret, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) == 0 {
		return nil, ErrInvalidEncryptionKey
	}

	derived := make([]byte, encryptionKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte("lockit/totp-secret")), derived); err != nil {
		return nil, errors.Join(ErrInvalidEncryptionKey, err)
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncryptionKey, err)
	}
	return cipher.NewGCM(block)
}
