// Package logger provides slog attribute helpers used across the library.
//
// Helpers follow the empty-Attr pattern for nil safety, so call sites never
// need explicit nil checks:
//
//	log.Error("verification failed", logger.Error(err), logger.UserID(id))
package logger
