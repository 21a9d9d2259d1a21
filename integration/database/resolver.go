package database

import (
	"fmt"
	"net/url"
	"strings"
)

// AdapterType identifies which storage engine backs a connection URI.
type AdapterType string

const (
	AdapterCouchDB    AdapterType = "couchdb"
	AdapterMongoDB    AdapterType = "mongodb"
	AdapterPostgreSQL AdapterType = "postgresql"
	AdapterMySQL      AdapterType = "mysql"
	AdapterSQLite     AdapterType = "sqlite"
)

// Adapter describes the storage engine resolved from a connection URI.
type Adapter struct {
	// Type is the storage engine family.
	Type AdapterType

	// Name is the database name extracted from the URI path, empty when the
	// URI does not carry one.
	Name string
}

// Descriptor wraps a connection URL, for callers whose configuration keeps
// the URL inside a larger struct.
type Descriptor struct {
	URL string
}

// schemeAdapters maps URI schemes to adapter types. CouchDB exposes an HTTP
// API, so plain http/https URIs resolve to it.
var schemeAdapters = map[string]AdapterType{
	"http":        AdapterCouchDB,
	"https":       AdapterCouchDB,
	"mongodb":     AdapterMongoDB,
	"mongodb+srv": AdapterMongoDB,
	"postgres":    AdapterPostgreSQL,
	"postgresql":  AdapterPostgreSQL,
	"mysql":       AdapterMySQL,
	"sqlite":      AdapterSQLite,
	"file":        AdapterSQLite,
}

// Resolve maps a connection URI to its storage adapter. It accepts a raw
// URI string or a Descriptor and inspects only the scheme, so no network
// access happens and credentials in the URI are never validated.
func Resolve[T string | Descriptor](descriptor T) (Adapter, error) {
	var raw string
	switch d := any(descriptor).(type) {
	case string:
		raw = d
	case Descriptor:
		raw = d.URL
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Adapter{}, ErrEmptyDescriptor
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Adapter{}, fmt.Errorf("%w: %s", ErrInvalidDescriptor, raw)
	}

	scheme := strings.ToLower(u.Scheme)
	adapterType, ok := schemeAdapters[scheme]
	if !ok {
		return Adapter{}, fmt.Errorf("%w: %q", ErrUnrecognizedScheme, scheme)
	}

	return Adapter{
		Type: adapterType,
		Name: databaseName(adapterType, u),
	}, nil
}

// databaseName extracts the database name from the URI path. SQLite URIs
// point at a file, so the whole path is the name.
func databaseName(t AdapterType, u *url.URL) string {
	if t == AdapterSQLite {
		if u.Opaque != "" {
			return u.Opaque
		}
		return u.Path
	}
	return strings.TrimPrefix(u.Path, "/")
}
