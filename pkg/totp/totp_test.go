package totp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lockit/pkg/totp"
)

// rfcSecret is the shared secret from the RFC 6238 appendix test vectors.
var rfcSecret = []byte("12345678901234567890")

func TestGenerateCode_RFCVectors(t *testing.T) {
	cases := []struct {
		ts   int64
		code string
	}{
		{59, "94287082"},
		{1111111109, "07081804"},
		{1111111111, "14050471"},
		{1234567890, "89005924"},
		{2000000000, "69279037"},
		{20000000000, "65353130"},
	}

	for _, tc := range cases {
		counter := totp.Counter(time.Unix(tc.ts, 0), totp.DefaultPeriod)
		code, err := totp.GenerateCode(rfcSecret, counter, 8)
		require.NoError(t, err)
		assert.Equal(t, tc.code, code, "unix time %d", tc.ts)
	}
}

func TestGenerateCode_SixDigitTruncation(t *testing.T) {
	code, err := totp.GenerateCode(rfcSecret, totp.Counter(time.Unix(59, 0), totp.DefaultPeriod), 6)

	require.NoError(t, err)
	assert.Equal(t, "287082", code)
}

func TestGenerateCode_Deterministic(t *testing.T) {
	first, err := totp.GenerateCode(rfcSecret, 12345, 6)
	require.NoError(t, err)

	second, err := totp.GenerateCode(rfcSecret, 12345, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateCode_EmptySecret(t *testing.T) {
	_, err := totp.GenerateCode(nil, 1, 6)

	require.Error(t, err)
	assert.ErrorIs(t, err, totp.ErrInvalidSecret)
}

func TestGenerateCode_ZeroPadded(t *testing.T) {
	// Counter 1 at unix time 59: the 8-digit code starts with '9' but other
	// counters produce leading zeros; verify width is always preserved.
	code, err := totp.GenerateCode(rfcSecret, totp.Counter(time.Unix(1111111109, 0), totp.DefaultPeriod), 8)

	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.Equal(t, "07081804", code)
}

func TestVerify_CurrentCounter(t *testing.T) {
	now := time.Unix(1234567890, 0)
	code, err := totp.GenerateTOTP(rfcSecret, now)
	require.NoError(t, err)

	res := totp.Verify(code, rfcSecret, totp.VerifyOpts{}, now)

	assert.True(t, res.Matched)
	assert.Equal(t, 0, res.Delta)
}

func TestVerify_DriftWithinWindow(t *testing.T) {
	now := time.Unix(1234567890, 0)
	current := totp.Counter(now, totp.DefaultPeriod)

	for _, delta := range []int{-6, -2, -1, 1, 3, 6} {
		counter := current
		if delta < 0 {
			counter -= uint64(-delta)
		} else {
			counter += uint64(delta)
		}
		code, err := totp.GenerateCode(rfcSecret, counter, totp.DefaultDigits)
		require.NoError(t, err)

		res := totp.Verify(code, rfcSecret, totp.VerifyOpts{}, now)

		assert.True(t, res.Matched, "delta %d", delta)
		assert.Equal(t, delta, res.Delta, "delta %d", delta)
	}
}

func TestVerify_DriftOutsideWindow(t *testing.T) {
	now := time.Unix(1234567890, 0)
	current := totp.Counter(now, totp.DefaultPeriod)

	code, err := totp.GenerateCode(rfcSecret, current+7, totp.DefaultDigits)
	require.NoError(t, err)

	res := totp.Verify(code, rfcSecret, totp.VerifyOpts{}, now)

	assert.False(t, res.Matched)
	assert.Zero(t, res.Delta)
}

func TestVerify_NarrowWindow(t *testing.T) {
	now := time.Unix(1234567890, 0)
	current := totp.Counter(now, totp.DefaultPeriod)

	code, err := totp.GenerateCode(rfcSecret, current-2, totp.DefaultDigits)
	require.NoError(t, err)

	res := totp.Verify(code, rfcSecret, totp.VerifyOpts{Window: 1}, now)

	assert.False(t, res.Matched)
}

func TestVerify_MalformedCode(t *testing.T) {
	now := time.Unix(1234567890, 0)

	for _, code := range []string{"", "123", "12345678", "abcdef", "12345a"} {
		res := totp.Verify(code, rfcSecret, totp.VerifyOpts{}, now)
		assert.False(t, res.Matched, "code %q", code)
	}
}

func TestVerify_WrongCode(t *testing.T) {
	// Unix time 59 has the known code 287082, so 000000 must not match.
	res := totp.Verify("000000", rfcSecret, totp.VerifyOpts{}, time.Unix(59, 0))

	assert.False(t, res.Matched)
}

func TestVerify_EmptySecret(t *testing.T) {
	res := totp.Verify("123456", nil, totp.VerifyOpts{}, time.Unix(1234567890, 0))

	assert.False(t, res.Matched)
}

func TestVerify_NearEpoch(t *testing.T) {
	// Counter 0: negative window offsets would underflow and must be skipped.
	now := time.Unix(10, 0)
	code, err := totp.GenerateTOTP(rfcSecret, now)
	require.NoError(t, err)

	res := totp.Verify(code, rfcSecret, totp.VerifyOpts{}, now)

	assert.True(t, res.Matched)
	assert.Equal(t, 0, res.Delta)
}

func TestVerify_EightDigits(t *testing.T) {
	now := time.Unix(59, 0)

	res := totp.Verify("94287082", rfcSecret, totp.VerifyOpts{Digits: 8}, now)

	assert.True(t, res.Matched)
	assert.Equal(t, 0, res.Delta)
}

func TestVerify_TrimsWhitespace(t *testing.T) {
	now := time.Unix(1234567890, 0)
	code, err := totp.GenerateTOTP(rfcSecret, now)
	require.NoError(t, err)

	res := totp.Verify("  "+code+"\n", rfcSecret, totp.VerifyOpts{}, now)

	assert.True(t, res.Matched)
}

func TestConfig_VerifyOpts(t *testing.T) {
	cfg := totp.Config{Issuer: "Acme", Digits: 8, Period: time.Minute, Window: 2}

	opts := cfg.VerifyOpts()

	assert.Equal(t, 8, opts.Digits)
	assert.Equal(t, time.Minute, opts.Period)
	assert.Equal(t, 2, opts.Window)
}
