package pref

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	s := NewFileStore(path)

	if _, ok := s.Get(KeyLanguage); ok {
		t.Fatal("expected no value before first Set")
	}
	if err := s.Set(KeyLanguage, "vi"); err != nil {
		t.Fatalf("set: %v", err)
	}

	again := NewFileStore(path)
	got, ok := again.Get(KeyLanguage)
	if !ok || got != "vi" {
		t.Errorf("expected vi, got %q (%v)", got, ok)
	}
}

func TestFileStoreKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if err := s.Set(KeyLanguage, "en"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := s.Get("theme"); v != "dark" {
		t.Errorf("expected theme to survive, got %q", v)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)

	if _, ok := s.Get(KeyLanguage); ok {
		t.Error("expected corrupt file to read as empty")
	}
	if err := s.Set(KeyLanguage, "vi"); err != nil {
		t.Fatalf("set over corrupt file: %v", err)
	}
	if v, ok := s.Get(KeyLanguage); !ok || v != "vi" {
		t.Errorf("expected vi, got %q", v)
	}
}

func TestFileStoreIgnoresNonStringValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"lang":42}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := NewFileStore(path).Get(KeyLanguage); ok {
		t.Error("expected numeric value to be ignored")
	}
}

func TestInvalidKeys(t *testing.T) {
	stores := map[string]Store{
		"file":   NewFileStore(filepath.Join(t.TempDir(), "p.json")),
		"memory": NewMemoryStore(),
	}
	for name, s := range stores {
		for _, key := range []string{"", "a.b", "x*"} {
			if err := s.Set(key, "v"); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("%s: key %q: expected ErrInvalidKey, got %v", name, key, err)
			}
		}
	}
}
