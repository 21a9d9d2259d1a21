package database

import "errors"

var (
	// ErrEmptyDescriptor is returned when the connection descriptor carries
	// no URL.
	ErrEmptyDescriptor = errors.New("empty connection descriptor")

	// ErrInvalidDescriptor is returned when the URL cannot be parsed.
	ErrInvalidDescriptor = errors.New("invalid connection descriptor")

	// ErrUnrecognizedScheme is returned when no adapter handles the URI
	// scheme.
	ErrUnrecognizedScheme = errors.New("unrecognized connection scheme")
)
