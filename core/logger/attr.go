package logger

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// UserID creates an attribute for the authenticated user.
// Returns an empty Attr for uuid.Nil.
func UserID(id uuid.UUID) slog.Attr {
	if id == uuid.Nil {
		return slog.Attr{}
	}
	return slog.String("user_id", id.String())
}

// SessionID creates an attribute for the session identifier.
// Returns an empty Attr for uuid.Nil.
func SessionID(id uuid.UUID) slog.Attr {
	if id == uuid.Nil {
		return slog.Attr{}
	}
	return slog.String("session_id", id.String())
}

// Issuer creates an attribute for the TOTP issuer name.
func Issuer(name string) slog.Attr {
	return slog.String("issuer", name)
}

// Delta creates an attribute for the counter offset a code matched at.
func Delta(d int) slog.Attr {
	return slog.Int("delta", d)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
