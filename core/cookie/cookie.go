package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// minSecretLength guards against weak HMAC keys.
const minSecretLength = 32

// Manager handles HTTP cookie operations with HMAC-SHA256 signing.
type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a cookie manager. The first secret signs new cookies; every
// secret is tried during verification, which allows zero-downtime rotation.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}
	for i, secret := range secrets {
		if len(secret) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d",
				ErrSecretTooShort, i, len(secret), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{
		secrets:  secrets,
		defaults: applyOptions(defaults, opts),
	}, nil
}

// SetSigned writes a cookie whose value is bound to the cookie name with an
// HMAC-SHA256 signature, so values cannot be forged or swapped between names.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	o := applyOptions(m.defaults, opts)

	encoded := base64.RawURLEncoding.EncodeToString([]byte(value))
	signed := encoded + "." + m.sign(name, encoded)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    signed,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
	return nil
}

// GetSigned reads a cookie and verifies its signature. Returns
// ErrCookieNotFound when absent, ErrInvalidFormat or ErrInvalidSignature
// when the value cannot be trusted.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", ErrCookieNotFound
	}

	encoded, signature, ok := strings.Cut(c.Value, ".")
	if !ok {
		return "", ErrInvalidFormat
	}

	if !m.verify(name, encoded, signature) {
		return "", ErrInvalidSignature
	}

	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}
	return string(value), nil
}

// Delete expires a cookie immediately.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}

// sign computes the signature with the current (first) secret.
func (m *Manager) sign(name, encoded string) string {
	return signWith(m.secrets[0], name, encoded)
}

// verify checks the signature against every configured secret.
func (m *Manager) verify(name, encoded, signature string) bool {
	for _, secret := range m.secrets {
		expected := signWith(secret, name, encoded)
		if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1 {
			return true
		}
	}
	return false
}

func signWith(secret, name, encoded string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(name))
	_, _ = mac.Write([]byte{'.'})
	_, _ = mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
