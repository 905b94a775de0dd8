package config

import (
	"strings"
	"time"

	"github.com/rimiko/showcase/internal/carousel"
	"github.com/rimiko/showcase/internal/chat"
	"github.com/rimiko/showcase/internal/typewriter"
)

// Config is the typed configuration.
type Config struct {
	Carousel   CarouselConfig   `toml:"carousel"`
	Strip      StripConfig      `toml:"strip"`
	Page       PageConfig       `toml:"page"`
	Typewriter TypewriterConfig `toml:"typewriter"`
	Chat       ChatConfig       `toml:"chat"`
	Log        LogConfig        `toml:"log"`
}

// CarouselConfig tunes the drag and momentum physics. Times are in
// milliseconds and speeds in cells per millisecond.
type CarouselConfig struct {
	Smoothing          float64 `toml:"smoothing"`
	Friction           float64 `toml:"friction"`
	StopVelocity       float64 `toml:"stop_velocity"`
	ReferenceFrameMS   float64 `toml:"reference_frame_ms"`
	MinMoveIntervalMS  float64 `toml:"min_move_interval_ms"`
	MinFrameIntervalMS float64 `toml:"min_frame_interval_ms"`
	EdgeTolerance      float64 `toml:"edge_tolerance"`
	GlideRate          float64 `toml:"glide_rate"`
	FrameRate          int     `toml:"frame_rate"`
}

// StripConfig sizes the product cards.
type StripConfig struct {
	CardWidth int `toml:"card_width"`
	Gap       int `toml:"gap"`
}

// PageConfig controls the vertical page.
type PageConfig struct {
	SmoothScroll    bool     `toml:"smooth_scroll"`
	ShadowThreshold float64  `toml:"shadow_threshold"`
	RevealAllowance float64  `toml:"reveal_allowance"`
	WheelStep       int      `toml:"wheel_step"`
	Anchor          string   `toml:"anchor"`
	Gradient        []string `toml:"gradient"`
}

// TypewriterConfig holds the hero typewriter timings in milliseconds.
type TypewriterConfig struct {
	InitialDelayMS   int      `toml:"initial_delay_ms"`
	TypeIntervalMS   int      `toml:"type_interval_ms"`
	CompleteDelayMS  int      `toml:"complete_delay_ms"`
	HoldDelayMS      int      `toml:"hold_delay_ms"`
	DeleteIntervalMS int      `toml:"delete_interval_ms"`
	PauseDelayMS     int      `toml:"pause_delay_ms"`
	LoopDelayMS      int      `toml:"loop_delay_ms"`
	Phrases          []string `toml:"phrases"`
}

// ChatConfig selects the chat widget's remote provider and rule script.
type ChatConfig struct {
	Provider       string  `toml:"provider"`
	Model          string  `toml:"model"`
	APIKey         string  `toml:"api_key"`
	BaseURL        string  `toml:"base_url"`
	TimeoutSeconds float64 `toml:"timeout_seconds"`
	Script         string  `toml:"script"`
	SystemPrompt   string  `toml:"system_prompt"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := carousel.DefaultConfig()
	t := typewriter.DefaultConfig()
	return &Config{
		Carousel: CarouselConfig{
			Smoothing:          c.Smoothing,
			Friction:           c.Friction,
			StopVelocity:       c.StopVelocity,
			ReferenceFrameMS:   ms(c.ReferenceFrame),
			MinMoveIntervalMS:  ms(c.MinMoveInterval),
			MinFrameIntervalMS: ms(c.MinFrameInterval),
			EdgeTolerance:      c.EdgeTolerance,
			GlideRate:          c.GlideRate,
			FrameRate:          60,
		},
		Strip: StripConfig{
			CardWidth: 28,
			Gap:       2,
		},
		Page: PageConfig{
			SmoothScroll:    true,
			ShadowThreshold: 1,
			RevealAllowance: 2,
			WheelStep:       3,
			Gradient:        []string{"#22c55e", "#06b6d4", "#6366f1"},
		},
		Typewriter: TypewriterConfig{
			InitialDelayMS:   int(t.InitialDelay / time.Millisecond),
			TypeIntervalMS:   int(t.TypeInterval / time.Millisecond),
			CompleteDelayMS:  int(t.CompleteDelay / time.Millisecond),
			HoldDelayMS:      int(t.HoldDelay / time.Millisecond),
			DeleteIntervalMS: int(t.DeleteInterval / time.Millisecond),
			PauseDelayMS:     int(t.PauseDelay / time.Millisecond),
			LoopDelayMS:      int(t.LoopDelay / time.Millisecond),
			Phrases:          append([]string(nil), typewriter.DefaultPhrases...),
		},
		Chat: ChatConfig{
			TimeoutSeconds: chat.DefaultTimeout.Seconds(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.CarouselTuning().Validate(); err != nil {
		return &ValidationError{Key: "carousel", Message: err.Error()}
	}
	if c.Carousel.FrameRate < 1 || c.Carousel.FrameRate > 240 {
		return &ValidationError{Key: "carousel.frame_rate", Message: "must be between 1 and 240"}
	}
	if c.Strip.CardWidth < 4 {
		return &ValidationError{Key: "strip.card_width", Message: "must be at least 4"}
	}
	if c.Strip.Gap < 0 {
		return &ValidationError{Key: "strip.gap", Message: "must not be negative"}
	}
	if c.Page.ShadowThreshold < 0 || c.Page.RevealAllowance < 0 {
		return &ValidationError{Key: "page", Message: "thresholds must not be negative"}
	}
	if c.Page.WheelStep < 1 {
		return &ValidationError{Key: "page.wheel_step", Message: "must be at least 1"}
	}
	if len(c.Page.Gradient) == 0 {
		return &ValidationError{Key: "page.gradient", Message: "needs at least one colour"}
	}
	for key, v := range map[string]int{
		"typewriter.initial_delay_ms":   c.Typewriter.InitialDelayMS,
		"typewriter.type_interval_ms":   c.Typewriter.TypeIntervalMS,
		"typewriter.complete_delay_ms":  c.Typewriter.CompleteDelayMS,
		"typewriter.hold_delay_ms":      c.Typewriter.HoldDelayMS,
		"typewriter.delete_interval_ms": c.Typewriter.DeleteIntervalMS,
		"typewriter.pause_delay_ms":     c.Typewriter.PauseDelayMS,
		"typewriter.loop_delay_ms":      c.Typewriter.LoopDelayMS,
	} {
		if v <= 0 {
			return &ValidationError{Key: key, Message: "must be positive"}
		}
	}
	switch strings.ToLower(c.Chat.Provider) {
	case chat.ProviderNone, chat.ProviderOpenAI, chat.ProviderAnthropic, chat.ProviderGemini:
	default:
		return &ValidationError{Key: "chat.provider", Message: "unknown provider " + c.Chat.Provider}
	}
	if c.Chat.TimeoutSeconds <= 0 {
		return &ValidationError{Key: "chat.timeout_seconds", Message: "must be positive"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Key: "log.level", Message: "must be debug, info, warn or error"}
	}
	return nil
}

// CarouselTuning converts the carousel section to controller tuning.
func (c *Config) CarouselTuning() carousel.Config {
	t := carousel.DefaultConfig()
	t.Smoothing = c.Carousel.Smoothing
	t.Friction = c.Carousel.Friction
	t.StopVelocity = c.Carousel.StopVelocity
	t.ReferenceFrame = dur(c.Carousel.ReferenceFrameMS)
	t.MinMoveInterval = dur(c.Carousel.MinMoveIntervalMS)
	t.MinFrameInterval = dur(c.Carousel.MinFrameIntervalMS)
	t.EdgeTolerance = c.Carousel.EdgeTolerance
	t.GlideRate = c.Carousel.GlideRate
	t.PageStep = float64(c.Strip.CardWidth + c.Strip.Gap)
	return t
}

// FrameInterval returns the frame ticker period.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(1, c.Carousel.FrameRate))
}

// TypewriterTimings converts the typewriter section.
func (c *Config) TypewriterTimings() typewriter.Config {
	t := c.Typewriter
	return typewriter.Config{
		InitialDelay:   time.Duration(t.InitialDelayMS) * time.Millisecond,
		TypeInterval:   time.Duration(t.TypeIntervalMS) * time.Millisecond,
		CompleteDelay:  time.Duration(t.CompleteDelayMS) * time.Millisecond,
		HoldDelay:      time.Duration(t.HoldDelayMS) * time.Millisecond,
		DeleteInterval: time.Duration(t.DeleteIntervalMS) * time.Millisecond,
		PauseDelay:     time.Duration(t.PauseDelayMS) * time.Millisecond,
		LoopDelay:      time.Duration(t.LoopDelayMS) * time.Millisecond,
	}
}

// ChatProvider converts the chat section.
func (c *Config) ChatProvider() chat.ProviderConfig {
	return chat.ProviderConfig{
		Provider: c.Chat.Provider,
		Model:    c.Chat.Model,
		APIKey:   c.Chat.APIKey,
		BaseURL:  c.Chat.BaseURL,
		Timeout:  c.ChatTimeout(),
	}
}

// ChatTimeout returns the remote completion timeout.
func (c *Config) ChatTimeout() time.Duration {
	return dur(c.Chat.TimeoutSeconds * 1000)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func dur(millis float64) time.Duration {
	return time.Duration(millis * float64(time.Millisecond))
}
