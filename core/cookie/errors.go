package cookie

import "errors"

var (
	// ErrNoSecret indicates no secret was provided for cookie signing.
	ErrNoSecret = errors.New("no secret provided for cookie manager")
	// ErrSecretTooShort indicates the secret doesn't meet the minimum length.
	ErrSecretTooShort = errors.New("secret must be at least 32 characters long")
	// ErrInvalidSignature indicates signature verification failed, suggesting
	// tampering or a rotated-away secret.
	ErrInvalidSignature = errors.New("cookie signature verification failed")
	// ErrCookieNotFound indicates the requested cookie doesn't exist in the request.
	ErrCookieNotFound = errors.New("cookie not found in request")
	// ErrInvalidFormat indicates the cookie value has an unexpected format.
	ErrInvalidFormat = errors.New("invalid cookie format")
)
