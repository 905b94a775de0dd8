// Package pref persists the user's preferences.
//
// The only preference the page keeps is the interface language; it lives
// in a small JSON document so that other keys can be added without a
// migration. A missing or unreadable document is treated as empty.
package pref

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// KeyLanguage is the preference holding the interface language.
const KeyLanguage = "lang"

// ErrInvalidKey is returned for keys that cannot be stored.
var ErrInvalidKey = errors.New("invalid preference key")

// Store reads and writes string preferences.
type Store interface {
	// Get returns the value for key and whether it was set.
	Get(key string) (string, bool)

	// Set stores value under key.
	Set(key, value string) error
}

// FileStore keeps preferences in a JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path. The file and
// its directory are created on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the preference file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "rimiko", "prefs.json"), nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Get implements Store.
func (s *FileStore) Get(key string) (string, bool) {
	if !validKey(key) {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	res := gjson.Get(doc, key)
	if !res.Exists() || res.Type != gjson.String {
		return "", false
	}
	return res.String(), true
}

// Set implements Store.
func (s *FileStore) Set(key, value string) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := sjson.Set(s.read(), key, value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating preference dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing preferences: %w", err)
	}
	return nil
}

// read returns the stored document, or "{}" when it is missing or is not
// valid JSON.
func (s *FileStore) read() string {
	data, err := os.ReadFile(s.path)
	if err != nil || !gjson.ValidBytes(data) {
		return "{}"
	}
	return string(data)
}

// validKey rejects keys that gjson/sjson would treat as paths.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			return false
		}
	}
	return true
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set implements Store.
func (s *MemoryStore) Set(key, value string) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
