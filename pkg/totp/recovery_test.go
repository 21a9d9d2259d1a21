package totp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lockit/pkg/totp"
)

func TestGenerateRecoveryCodes_Success(t *testing.T) {
	codes, err := totp.GenerateRecoveryCodes(10)

	require.NoError(t, err)
	require.Len(t, codes, 10)

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		assert.Len(t, code, 16)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 10, "codes must be unique")
}

func TestGenerateRecoveryCodes_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := totp.GenerateRecoveryCodes(n)
		assert.ErrorIs(t, err, totp.ErrInvalidCodeCount, "count %d", n)
	}
}

func TestVerifyRecoveryCode_Match(t *testing.T) {
	codes, err := totp.GenerateRecoveryCodes(1)
	require.NoError(t, err)

	hash, err := totp.HashRecoveryCode(codes[0])
	require.NoError(t, err)

	assert.True(t, totp.VerifyRecoveryCode(codes[0], hash))
}

func TestVerifyRecoveryCode_NormalizesInput(t *testing.T) {
	codes, err := totp.GenerateRecoveryCodes(1)
	require.NoError(t, err)

	hash, err := totp.HashRecoveryCode(codes[0])
	require.NoError(t, err)

	spaced := strings.ToLower(codes[0][:4] + "-" + codes[0][4:8] + " " + codes[0][8:])
	assert.True(t, totp.VerifyRecoveryCode(spaced, hash))
}

func TestVerifyRecoveryCode_Mismatch(t *testing.T) {
	codes, err := totp.GenerateRecoveryCodes(2)
	require.NoError(t, err)

	hash, err := totp.HashRecoveryCode(codes[0])
	require.NoError(t, err)

	assert.False(t, totp.VerifyRecoveryCode(codes[1], hash))
}
