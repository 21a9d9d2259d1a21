package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/lockit/core/logger"
)

// GateConfig configures the authentication gate.
type GateConfig struct {
	// LoginPath is the page unauthenticated browsers are redirected to
	// (default: "/login").
	LoginPath string

	// RedirectParam is the query parameter carrying the originally requested
	// URL so the login flow can return the user there (default: "redirect").
	RedirectParam string

	// MachineClient reports whether the request comes from a non-browser
	// client that should receive 401 instead of a redirect. The default
	// treats requests with an Authorization header or a JSON Accept header
	// as machine clients.
	MachineClient func(r *http.Request) bool

	// Skip bypasses the gate for matching requests.
	Skip func(r *http.Request) bool

	// Logger records denied requests (default: discard).
	Logger *slog.Logger
}

// Gate creates middleware that lets fully authenticated sessions through and
// turns everyone else away: browsers get a 303 redirect to the login page
// with the original URL preserved, machine clients get 401.
//
// Sessions that passed the password step but not the one-time code are
// treated as unauthenticated. Must run after the Session middleware.
func Gate[Data any](cfg GateConfig) func(http.Handler) http.Handler {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.RedirectParam == "" {
		cfg.RedirectParam = "redirect"
	}
	if cfg.MachineClient == nil {
		cfg.MachineClient = defaultMachineClient
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

			sess, ok := GetSession[Data](r.Context())
			if ok && sess.IsAuthenticated() {
				next.ServeHTTP(w, r)
				return
			}

			cfg.Logger.InfoContext(r.Context(), "unauthenticated request denied",
				logger.Method(r.Method), logger.Path(r.URL.Path))

			if cfg.MachineClient(r) {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			http.Redirect(w, r, loginURL(cfg, r), http.StatusSeeOther)
		})
	}
}

// loginURL builds the login redirect target carrying the original URL.
func loginURL(cfg GateConfig, r *http.Request) string {
	target := r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	return cfg.LoginPath + "?" + cfg.RedirectParam + "=" + url.QueryEscape(target)
}

func defaultMachineClient(r *http.Request) bool {
	if r.Header.Get("Authorization") != "" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
