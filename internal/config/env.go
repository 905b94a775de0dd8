package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "RIMIKO_")
	mapping map[string]string // Env var -> config path
}

// NewEnvLoader creates an environment loader.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
	}
}

// defaultEnvMapping returns variables whose names do not follow the
// section_key pattern.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL": "log.level",
		prefix + "LOG_FILE":  "log.file",
		prefix + "PROVIDER":  "chat.provider",
		prefix + "MODEL":     "chat.model",
	}
}

// Load reads environment variables and returns a configuration map.
// Empty values count as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			setByPath(config, path, parseValue(val))
		}
	}

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}

		path := l.envToPath(name)
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// envToPath converts RIMIKO_CAROUSEL_STOP_VELOCITY to
// carousel.stop_velocity. Names without a key part map to "".
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// parseValue converts a string to the most specific scalar it spells.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only values with a decimal point are floats.
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	// JSON arrays, e.g. RIMIKO_PAGE_GRADIENT='["#fff","#000"]'.
	if strings.HasPrefix(s, "[") {
		var v []any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
