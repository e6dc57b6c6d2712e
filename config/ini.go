package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// INIStore keeps the configuration in an INI file, one section per plugin.
type INIStore struct {
	path string
	file *ini.File
}

// OpenINI loads path, creating an empty configuration when it does not exist yet.
func OpenINI(path string) (*INIStore, error) {
	if path == "" {
		return nil, fmt.Errorf("ini store path cannot be empty")
	}

	file := ini.Empty()
	if _, err := os.Stat(path); err == nil {
		file, err = ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}

	return &INIStore{path: path, file: file}, nil
}

func (s *INIStore) Get(section, key string) (string, bool) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

func (s *INIStore) Set(section, key, value string) {
	s.file.Section(section).Key(key).SetValue(value)
}

func (s *INIStore) Delete(section, key string) bool {
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return false
	}
	sec.DeleteKey(key)
	return true
}

// Save writes the file atomically through a temporary sibling.
func (s *INIStore) Save() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := s.file.SaveTo(tmp); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func (s *INIStore) Close() error { return nil }
