package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("expected valid defaults, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader(filepath.Join(t.TempDir(), "absent.toml")).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Carousel.Friction != 0.92 || cfg.Strip.CardWidth != 28 {
		t.Errorf("expected defaults, got %+v", cfg.Carousel)
	}
	if len(cfg.Typewriter.Phrases) != 5 {
		t.Errorf("expected default phrases, got %d", len(cfg.Typewriter.Phrases))
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[carousel]
friction = 0.9

[chat]
provider = "anthropic"

[log]
level = "debug"
`)
	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Carousel.Friction != 0.9 {
		t.Errorf("expected friction 0.9, got %v", cfg.Carousel.Friction)
	}
	if cfg.Carousel.Smoothing != 0.85 {
		t.Errorf("unset keys keep their defaults, got smoothing %v", cfg.Carousel.Smoothing)
	}
	if cfg.Chat.Provider != "anthropic" || cfg.Log.Level != "debug" {
		t.Errorf("unexpected chat/log sections %+v %+v", cfg.Chat, cfg.Log)
	}
}

func TestZeroTuningReachesController(t *testing.T) {
	path := writeFile(t, `
[carousel]
smoothing = 0.0
edge_tolerance = 0.0
`)
	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tuning := cfg.CarouselTuning()
	if tuning.Smoothing != 0 || tuning.EdgeTolerance != 0 {
		t.Errorf("expected smoothing 0 and tolerance 0, got %v and %v", tuning.Smoothing, tuning.EdgeTolerance)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "[carousel]\nfriction = 0.9\n")
	t.Setenv("RIMIKO_CAROUSEL_FRICTION", "0.95")
	t.Setenv("RIMIKO_STRIP_CARD_WIDTH", "30")
	t.Setenv("RIMIKO_LOG_FILE", "/tmp/rimiko.log")
	t.Setenv("RIMIKO_PAGE_GRADIENT", `["#000000"]`)

	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Carousel.Friction != 0.95 {
		t.Errorf("expected 0.95, got %v", cfg.Carousel.Friction)
	}
	if cfg.Strip.CardWidth != 30 {
		t.Errorf("expected 30, got %v", cfg.Strip.CardWidth)
	}
	if cfg.Log.File != "/tmp/rimiko.log" {
		t.Errorf("expected log file, got %q", cfg.Log.File)
	}
	if len(cfg.Page.Gradient) != 1 || cfg.Page.Gradient[0] != "#000000" {
		t.Errorf("unexpected gradient %v", cfg.Page.Gradient)
	}
}

func TestParseErrorPosition(t *testing.T) {
	path := writeFile(t, "[carousel]\nfriction = = 1\n")
	_, err := NewLoader(path).Load()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("expected line 2, got %d", perr.Line)
	}
	if !strings.HasPrefix(perr.Error(), path) {
		t.Errorf("expected path in message, got %q", perr.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"friction", func(c *Config) { c.Carousel.Friction = 1 }, "carousel"},
		{"smoothing", func(c *Config) { c.Carousel.Smoothing = -0.1 }, "carousel"},
		{"frame rate", func(c *Config) { c.Carousel.FrameRate = 0 }, "carousel.frame_rate"},
		{"card width", func(c *Config) { c.Strip.CardWidth = 2 }, "strip.card_width"},
		{"gradient", func(c *Config) { c.Page.Gradient = nil }, "page.gradient"},
		{"typewriter", func(c *Config) { c.Typewriter.TypeIntervalMS = 0 }, "typewriter.type_interval_ms"},
		{"provider", func(c *Config) { c.Chat.Provider = "llama" }, "chat.provider"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Key != tt.key {
				t.Fatalf("expected validation error for %s, got %v", tt.key, err)
			}
			if !errors.Is(err, ErrInvalidValue) {
				t.Error("expected ErrInvalidValue")
			}
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Strip.CardWidth = 30
	cfg.Strip.Gap = 3
	cfg.Chat.TimeoutSeconds = 2.5

	if got := cfg.CarouselTuning().PageStep; got != 33 {
		t.Errorf("expected page step 33, got %v", got)
	}
	if got := cfg.CarouselTuning().ReferenceFrame; got != 16*time.Millisecond {
		t.Errorf("expected 16ms, got %v", got)
	}
	if got := cfg.ChatTimeout(); got != 2500*time.Millisecond {
		t.Errorf("expected 2.5s, got %v", got)
	}
	if got := cfg.TypewriterTimings().DeleteInterval; got != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %v", got)
	}
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("expected 60fps, got %v", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(Default())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := writeFile(t, string(data))
	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Page.WheelStep != 3 {
		t.Errorf("expected wheel step 3, got %d", cfg.Page.WheelStep)
	}
}
