package config

import (
	"fmt"
	"strings"
)

// Section and key under which the prefix override is persisted.
const (
	UserbotSection = "userbot"
	PrefixKey      = "userbot_prefix"
)

// Store is a sectioned key/value configuration that is flushed explicitly.
// Changes made with Set and Delete are only durable after Save.
type Store interface {
	Get(section, key string) (string, bool)
	Set(section, key, value string)
	// Delete removes the key and reports whether it existed.
	Delete(section, key string) bool
	Save() error
	Close() error
}

var (
	_ Store = (*INIStore)(nil)
	_ Store = (*SQLStore)(nil)
)

// Open returns the store described by dsn:
//
//	ini:<path>            INI file
//	sqlite:<path>         SQLite database
//	postgres://...        PostgreSQL (also postgresql://)
//
// A bare path is treated as an INI file.
func Open(dsn string) (Store, error) {
	switch {
	case dsn == "":
		return nil, fmt.Errorf("config store is not set")
	case strings.HasPrefix(dsn, "ini:"):
		return OpenINI(strings.TrimPrefix(dsn, "ini:"))
	case strings.HasPrefix(dsn, "sqlite:"):
		return OpenSQL("sqlite3", strings.TrimPrefix(dsn, "sqlite:"))
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenSQL("postgres", dsn)
	default:
		return OpenINI(dsn)
	}
}

// Prefix returns the persisted prefix override, if any.
func Prefix(s Store) (string, bool) {
	p, ok := s.Get(UserbotSection, PrefixKey)
	if !ok || p == "" {
		return "", false
	}
	return p, true
}
