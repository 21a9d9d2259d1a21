package totp

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// recoveryCodeBytes yields 16-character base32 codes.
const recoveryCodeBytes = 10

// GenerateRecoveryCodes creates n random single-use backup codes.
// Each code is 16 characters from the base32 alphabet. Codes must be shown
// to the user once and stored hashed (see HashRecoveryCode).
func GenerateRecoveryCodes(n int) ([]string, error) {
	if n <= 0 {
		return nil, ErrInvalidCodeCount
	}

	codes := make([]string, 0, n)
	buf := make([]byte, recoveryCodeBytes)
	for i := 0; i < n; i++ {
		if _, err := rand.Read(buf); err != nil {
			return nil, errors.Join(ErrSecretGeneration, err)
		}
		codes = append(codes, base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf))
	}
	return codes, nil
}

// HashRecoveryCode hashes a recovery code with bcrypt for storage.
func HashRecoveryCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(normalizeRecoveryCode(code)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyRecoveryCode reports whether a user-supplied code matches a stored
// hash. Input is normalized, so dashes, spaces and lowercase are accepted.
// The caller is responsible for invalidating the code after a match.
func VerifyRecoveryCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(normalizeRecoveryCode(code))) == nil
}

// normalizeRecoveryCode strips the separators users commonly type.
func normalizeRecoveryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, "-", "")
	return strings.ReplaceAll(code, " ", "")
}
