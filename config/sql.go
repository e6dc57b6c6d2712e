package config

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS userbot_config (
    section TEXT NOT NULL,
    key     TEXT NOT NULL,
    value   TEXT NOT NULL,
    PRIMARY KEY (section, key)
);`

type entryKey struct {
	section string
	key     string
}

// SQLStore mirrors the userbot_config table in memory. Reads are served from
// the mirror; Set and Delete are queued and written by Save in one transaction.
type SQLStore struct {
	db *sql.DB

	mu      sync.Mutex
	values  map[entryKey]string
	pending map[entryKey]*string // nil value means delete
}

// OpenSQL connects with the given database/sql driver ("postgres" or "sqlite3")
// and loads the current configuration.
func OpenSQL(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create config table: %w", err)
	}

	s := &SQLStore{
		db:      db,
		values:  make(map[entryKey]string),
		pending: make(map[entryKey]*string),
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) load() error {
	rows, err := s.db.Query("SELECT section, key, value FROM userbot_config")
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k entryKey
		var value string
		if err := rows.Scan(&k.section, &k.key, &value); err != nil {
			return fmt.Errorf("failed to scan config row: %w", err)
		}
		s.values[k] = value
	}
	return rows.Err()
}

func (s *SQLStore) Get(section, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[entryKey{section, key}]
	return v, ok
}

func (s *SQLStore) Set(section, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := entryKey{section, key}
	s.values[k] = value
	s.pending[k] = &value
}

func (s *SQLStore) Delete(section, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := entryKey{section, key}
	if _, ok := s.values[k]; !ok {
		return false
	}
	delete(s.values, k)
	s.pending[k] = nil
	return true
}

func (s *SQLStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for k, v := range s.pending {
		if v == nil {
			_, err = tx.Exec("DELETE FROM userbot_config WHERE section = $1 AND key = $2", k.section, k.key)
		} else {
			_, err = tx.Exec(`
				INSERT INTO userbot_config (section, key, value)
				VALUES ($1, $2, $3)
				ON CONFLICT (section, key)
				DO UPDATE SET value = excluded.value`,
				k.section, k.key, *v)
		}
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save %s.%s: %w", k.section, k.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit config: %w", err)
	}
	s.pending = make(map[entryKey]*string)
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
