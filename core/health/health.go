package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/lockit/core/logger"
)

// Liveness reports that the process is running. Always 200, no dependency
// checks.
func Liveness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

// NoContent answers 204 without a body, for high-frequency pings.
func NoContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Readiness verifies every dependency probe. Returns "READY" when all pass
// and 503 when any fails.
func Readiness(log *slog.Logger, probes ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, probe := range probes {
			if err := probe(r.Context()); err != nil {
				if log != nil {
					log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				}
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
