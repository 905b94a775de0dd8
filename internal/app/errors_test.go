package app

import (
	"errors"
	"testing"
)

func TestOperationError(t *testing.T) {
	base := errors.New("disk full")

	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{"op only", NewOperationError("reload", "", nil), "reload"},
		{"with target", NewOperationError("save", "lang", base), "save lang: disk full"},
		{"with context", NewOperationError("save", "lang", base).WithContext("toggle"), "save lang (toggle): disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}

	err := NewOperationError("save", "lang", base)
	if !errors.Is(err, base) {
		t.Error("expected OperationError to unwrap to its cause")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil {
		t.Error("expected nil receiver to stay nil")
	}
	if nilErr.Error() != "" {
		t.Error("expected empty message for nil receiver")
	}
}

func TestInitError(t *testing.T) {
	base := errors.New("boom")
	err := &InitError{Component: "config", Err: base}

	if got := err.Error(); got != "initializing config: boom" {
		t.Errorf("expected %q, got %q", "initializing config: boom", got)
	}
	if !errors.Is(err, base) {
		t.Error("expected InitError to unwrap to its cause")
	}
}
