package settings

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/BurntSushi/toml"
)

// Keys the host framework reads the record under.
const (
	KeyDatabaseURI = "SQLALCHEMY_DATABASE_URI"
	KeyCacheType   = "CACHE_TYPE"
	KeyDebug       = "DEBUG"
)

// masked replaces secrets in displayed values.
const masked = "xxxxx"

// View is the record laid out under the host framework keys.
// DatabaseURI is nil when DATABASE_URL was not set.
type View struct {
	Profile     Profile   `json:"PROFILE"                 toml:"PROFILE"`
	DatabaseURI *string   `json:"SQLALCHEMY_DATABASE_URI" toml:"SQLALCHEMY_DATABASE_URI,omitempty"`
	CacheType   CacheKind `json:"CACHE_TYPE"              toml:"CACHE_TYPE"`
	Debug       bool      `json:"DEBUG"                   toml:"DEBUG"`
}

// View returns the framework key view of s.
// Unless reveal is set, a password inside the database URI is masked.
func (s Settings) View(reveal bool) View {
	v := View{
		Profile:   s.profile,
		CacheType: s.cacheKind,
		Debug:     s.debug,
	}

	if s.hasDatabase {
		uri := s.databaseURI
		if !reveal {
			uri = redact(uri)
		}

		v.DatabaseURI = &uri
	}

	return v
}

// Map returns the raw values keyed by framework key. An unset database URI maps to nil.
func (s Settings) Map() map[string]any {
	m := map[string]any{
		KeyDatabaseURI: nil,
		KeyCacheType:   string(s.cacheKind),
		KeyDebug:       s.debug,
	}

	if s.hasDatabase {
		m[KeyDatabaseURI] = s.databaseURI
	}

	return m
}

// DumpTOML renders v as TOML.
func DumpTOML(v View) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(v); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpJSON renders v as indented JSON.
func DumpJSON(v View) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(v); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// secretParams are query parameters whose values are masked.
var secretParams = map[string]bool{
	"password":    true,
	"sslpassword": true,
}

// redact masks the password of a URL shaped connection string, both in the
// user info and in the query. Anything that is not a hierarchical URL, such as
// a mysql DSN, is masked as a whole.
func redact(uri string) string {
	if uri == "" {
		return ""
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Opaque != "" {
		return masked
	}

	u.RawQuery = redactQuery(u.RawQuery)

	return u.Redacted()
}

// redactQuery masks secret parameters and keeps the order of the rest.
func redactQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	parts := strings.Split(rawQuery, "&")
	for i, part := range parts {
		key, _, _ := strings.Cut(part, "=")

		name, err := url.QueryUnescape(key)
		if err != nil || secretParams[strings.ToLower(name)] {
			parts[i] = key + "=" + masked
		}
	}

	return strings.Join(parts, "&")
}
