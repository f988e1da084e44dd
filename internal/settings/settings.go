package settings

import (
	"os"
)

// EnvDatabaseURL is the environment variable holding the database connection string.
const EnvDatabaseURL = "DATABASE_URL"

// CacheKind names the caching strategy the host framework should instantiate.
type CacheKind string

// SimpleCache selects an in-process, non-persistent cache.
const SimpleCache CacheKind = "SimpleCache"

// String implements fmt.Stringer.
func (k CacheKind) String() string {
	return string(k)
}

// Profile names the settings profile a record belongs to.
type Profile string

// Development is the only profile shipped.
const Development Profile = "development"

// LookupFunc reads an environment variable. The bool reports whether it was set.
type LookupFunc func(key string) (string, bool)

// Settings is the immutable settings record.
type Settings struct {
	profile     Profile
	databaseURI string
	hasDatabase bool
	cacheKind   CacheKind
	debug       bool
}

// New builds the settings record, reading DATABASE_URL through lookup exactly once.
// A nil lookup reads the process environment.
func New(lookup LookupFunc) Settings {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	uri, ok := lookup(EnvDatabaseURL)

	return Settings{
		profile:     Development,
		databaseURI: uri,
		hasDatabase: ok,
		cacheKind:   SimpleCache,
		debug:       true,
	}
}

// FromEnv builds the settings record from the process environment.
func FromEnv() Settings {
	return New(os.LookupEnv)
}

// DatabaseURI returns the database connection string.
// ok is false when DATABASE_URL was not set, which is different from set but empty.
func (s Settings) DatabaseURI() (uri string, ok bool) {
	return s.databaseURI, s.hasDatabase
}

// CacheBackendKind returns the cache strategy selector.
func (s Settings) CacheBackendKind() CacheKind {
	return s.cacheKind
}

// Debug reports whether verbose error reporting is enabled.
func (s Settings) Debug() bool {
	return s.debug
}

// Profile returns the profile the record was built for.
func (s Settings) Profile() Profile {
	return s.profile
}
