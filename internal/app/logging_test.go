package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/rimiko/showcase/internal/config"
)

func TestNewLoggerWithoutFileIsSilent(t *testing.T) {
	logger, err := NewLogger(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a no-op logger without a file")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rimiko.log")
	logger, err := NewLogger(config.LogConfig{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info to be filtered at warn level")
	}
	WithComponent(logger, "carousel").Warn("edge reached")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), `"logger":"carousel"`) {
		t.Errorf("expected component name in log, got %s", data)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger(config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	if err == nil {
		t.Error("expected error for unknown level")
	}
}
