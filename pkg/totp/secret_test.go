package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lockit/pkg/totp"
)

func TestGenerateSecretKey_Success(t *testing.T) {
	secret, err := totp.GenerateSecretKey()

	require.NoError(t, err)
	assert.Len(t, secret, 20)
}

func TestGenerateSecretKey_Unique(t *testing.T) {
	first, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	second, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestEncodeSecret_KnownVector(t *testing.T) {
	// RFC 4648 test vector.
	assert.Equal(t, "MZXW6YTBOI======", totp.EncodeSecret([]byte("foobar")))
}

func TestEncodeSecret_PaddedToMultipleOfEight(t *testing.T) {
	for n := 0; n < 16; n++ {
		encoded := totp.EncodeSecret(make([]byte, n))
		assert.Zero(t, len(encoded)%8, "length %d", n)
	}
}

func TestDecodeSecret_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xff, 0x00, 0xff},
		[]byte("12345678901234567890"),
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
	}

	for _, in := range inputs {
		decoded, err := totp.DecodeSecret(totp.EncodeSecret(in))
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func TestDecodeSecret_CaseInsensitive(t *testing.T) {
	decoded, err := totp.DecodeSecret("mzxw6ytboi======")

	require.NoError(t, err)
	assert.Equal(t, []byte("foobar"), decoded)
}

func TestDecodeSecret_InvalidAlphabet(t *testing.T) {
	_, err := totp.DecodeSecret("MZXW1YTB") // '1' is not in the base32 alphabet

	require.Error(t, err)
	assert.ErrorIs(t, err, totp.ErrInvalidEncoding)
}

func TestDecodeSecret_InvalidPadding(t *testing.T) {
	_, err := totp.DecodeSecret("MZXW6YTBOI=") // padding not reaching a multiple of 8

	require.Error(t, err)
	assert.ErrorIs(t, err, totp.ErrInvalidEncoding)
}
