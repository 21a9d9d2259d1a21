package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/lockit/core/logger"
	"github.com/dmitrymomot/lockit/core/session"
)

type sessionKey struct{}

// SessionTransport loads the session for a request and persists it back
// after handling. sessiontransport.Cookie implements it.
type SessionTransport[Data any] interface {
	Load(r *http.Request) (session.Session[Data], error)
	Store(ctx context.Context, w http.ResponseWriter, sess session.Session[Data]) error
}

// SessionConfig configures the session middleware.
type SessionConfig[Data any] struct {
	// Transport loads and stores sessions (required).
	Transport SessionTransport[Data]

	// Skip bypasses the middleware for matching requests.
	Skip func(r *http.Request) bool

	// Logger records load and store failures (default: discard).
	Logger *slog.Logger
}

// Session creates middleware that loads the request session, makes it
// available via GetSession, and persists the final state after the handler
// returns.
func Session[Data any](transport SessionTransport[Data]) func(http.Handler) http.Handler {
	return SessionWithConfig(SessionConfig[Data]{Transport: transport})
}

// SessionWithConfig creates session middleware with custom configuration.
// Load failures degrade to an empty session so the request still proceeds;
// store failures are logged but do not fail an already-written response.
func SessionWithConfig[Data any](cfg SessionConfig[Data]) func(http.Handler) http.Handler {
	if cfg.Transport == nil {
		panic("session middleware: transport is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := cfg.Transport.Load(r)
			if err != nil {
				cfg.Logger.ErrorContext(r.Context(), "session load failed",
					logger.Error(err), logger.Path(r.URL.Path))
				sess = session.Session[Data]{}
			}

			holder := &sess
			r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, holder))

			next.ServeHTTP(w, r)

			if err := cfg.Transport.Store(r.Context(), w, *holder); err != nil {
				cfg.Logger.ErrorContext(r.Context(), "session store failed",
					logger.Error(err), logger.SessionID(holder.ID))
			}
		})
	}
}

// GetSession retrieves the request session placed by the session middleware.
func GetSession[Data any](ctx context.Context) (session.Session[Data], bool) {
	if holder, ok := ctx.Value(sessionKey{}).(*session.Session[Data]); ok {
		return *holder, true
	}
	return session.Session[Data]{}, false
}

// SetSession updates the request session so the middleware persists the new
// state after the handler returns. No-op when the middleware is not active.
func SetSession[Data any](ctx context.Context, sess session.Session[Data]) {
	if holder, ok := ctx.Value(sessionKey{}).(*session.Session[Data]); ok {
		*holder = sess
	}
}
