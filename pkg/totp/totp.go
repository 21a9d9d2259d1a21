package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultDigits is the standard authenticator code width.
	DefaultDigits = 6
	// DefaultPeriod is the standard TOTP time step.
	DefaultPeriod = 30 * time.Second
	// DefaultWindow is the default number of counter steps accepted on each
	// side of the current one. Six steps at a 30-second period tolerates up
	// to three minutes of clock drift, which is generous; narrow it via
	// VerifyOpts.Window when replay exposure matters more than usability.
	DefaultWindow = 6
)

// VerifyOpts controls code verification. The zero value applies the
// package defaults. Callers that must reject all clock drift should keep
// the window and check Result.Delta == 0 instead of shrinking it, so the
// strictness decision stays visible at the call site.
type VerifyOpts struct {
	// Digits is the expected code width (default 6).
	Digits int
	// Window is the number of counter steps accepted before and after the
	// current one (default 6).
	Window int
	// Period is the counter time step (default 30s).
	Period time.Duration
}

// Result reports the outcome of a verification attempt.
//
// Matched and Delta are orthogonal on purpose: the engine accepts any
// counter offset inside the window, and callers wanting strict zero-drift
// acceptance must check Delta == 0 themselves.
type Result struct {
	// Matched reports whether the code matched any counter in the window.
	Matched bool
	// Delta is the counter offset of the match relative to the current
	// counter. Zero when Matched is false.
	Delta int
}

// GenerateCode computes the RFC 4226 HOTP code for a secret and counter.
// The transform is HMAC-SHA1 over the counter as 8 big-endian bytes,
// dynamic truncation to a 31-bit integer, reduced mod 10^digits and
// rendered zero-padded. Returns ErrInvalidSecret for an empty secret.
func GenerateCode(secret []byte, counter uint64, digits int) (string, error) {
	if len(secret) == 0 {
		return "", ErrInvalidSecret
	}
	if digits <= 0 {
		digits = DefaultDigits
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, secret)
	_, _ = mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: the low nibble of the last byte selects 4 bytes,
	// masked to 31 bits to avoid sign ambiguity.
	offset := sum[len(sum)-1] & 0x0f
	bin := (int(sum[offset])&0x7f)<<24 |
		(int(sum[offset+1])&0xff)<<16 |
		(int(sum[offset+2])&0xff)<<8 |
		(int(sum[offset+3]) & 0xff)

	mod := 1
	for i := 0; i < digits; i++ {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", digits, bin%mod), nil
}

// GenerateTOTP computes the TOTP code for a secret at the given time using
// the default period and digits.
func GenerateTOTP(secret []byte, at time.Time) (string, error) {
	return GenerateCode(secret, Counter(at, DefaultPeriod), DefaultDigits)
}

// Counter converts a wall-clock time to the TOTP counter for a period.
func Counter(at time.Time, period time.Duration) uint64 {
	ts := at.Unix()
	if ts < 0 {
		return 0
	}
	return uint64(ts) / uint64(period/time.Second)
}

// Verify checks a submitted code against the secret within a drift window
// around now. The window is searched center-out: the current counter first,
// then increasing absolute offsets with the past tried before the future,
// so Result.Delta reports the closest matching offset. Comparison is
// constant-time.
//
// Malformed codes (wrong width, non-digit characters) and verification
// misses are normal outcomes, not errors: both return a zero Result.
func Verify(code string, secret []byte, opts VerifyOpts, now time.Time) Result {
	digits := opts.Digits
	if digits <= 0 {
		digits = DefaultDigits
	}
	window := opts.Window
	if window <= 0 {
		window = DefaultWindow
	}
	period := opts.Period
	if period <= 0 {
		period = DefaultPeriod
	}

	code = strings.TrimSpace(code)
	if len(code) != digits || !isDigits(code) {
		return Result{}
	}
	if len(secret) == 0 {
		return Result{}
	}

	current := Counter(now, period)
	for _, delta := range searchOrder(window) {
		counter := current
		if delta < 0 {
			back := uint64(-delta)
			if back > current {
				continue // counter would underflow near the epoch
			}
			counter -= back
		} else {
			counter += uint64(delta)
		}
		generated, err := GenerateCode(secret, counter, digits)
		if err != nil {
			return Result{}
		}
		if subtle.ConstantTimeCompare([]byte(generated), []byte(code)) == 1 {
			return Result{Matched: true, Delta: delta}
		}
	}

	return Result{}
}

// searchOrder returns counter offsets ordered by absolute distance from
// zero, past before future: 0, -1, +1, -2, +2, ...
func searchOrder(window int) []int {
	order := make([]int, 0, 2*window+1)
	order = append(order, 0)
	for d := 1; d <= window; d++ {
		order = append(order, -d, d)
	}
	return order
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
