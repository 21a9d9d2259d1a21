package sessiontransport

import "errors"

var (
	// ErrSessionExpired is returned when saving a session whose expiry has
	// already passed.
	ErrSessionExpired = errors.New("cannot save expired session")
)
