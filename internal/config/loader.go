package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "RIMIKO_"

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "rimiko", "config.toml"), nil
}

// Loader merges the default, file and environment layers.
type Loader struct {
	path string
	env  *EnvLoader
}

// NewLoader creates a loader for the file at path. An empty path skips the
// file layer.
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
		env:  NewEnvLoader(EnvPrefix),
	}
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads all layers and returns the validated configuration.
func (l *Loader) Load() (*Config, error) {
	defaults, err := toMap(Default())
	if err != nil {
		return nil, err
	}

	file, err := l.loadFile()
	if err != nil {
		return nil, err
	}

	env, err := l.env.Load()
	if err != nil {
		return nil, err
	}

	merged := DeepMerge(DeepMerge(defaults, file), env)

	cfg, err := fromMap(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile returns nil, nil when the file does not exist.
func (l *Loader) loadFile() (map[string]any, error) {
	if l.path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return parseTOML(l.path, data)
}

func parseTOML(source string, data []byte) (map[string]any, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return m, nil
}

// toMap converts a Config to its generic TOML map form.
func toMap(cfg *Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	return parseTOML("<defaults>", data)
}

// fromMap decodes a merged map into a Config.
func fromMap(m map[string]any) (*Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: "<merged>", Message: err.Error(), Err: err}
	}
	return &cfg, nil
}

// Encode renders cfg as TOML, for writing a starter file.
func Encode(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
