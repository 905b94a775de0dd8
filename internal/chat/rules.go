package chat

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/rimiko/showcase/internal/i18n"
)

//go:embed rules.yaml
var builtinRules []byte

// Rule answers messages containing any of its keywords.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	EN       string   `yaml:"en"`
	VI       string   `yaml:"vi"`
}

// Answer returns the rule's answer in lang, falling back to English.
func (r Rule) Answer(lang i18n.Language) string {
	if lang == i18n.Vietnamese && r.VI != "" {
		return r.VI
	}
	return r.EN
}

// Rules is an ordered rule table; the first match wins.
type Rules []Rule

// DefaultRules returns the built-in bilingual rule table.
func DefaultRules() (Rules, error) {
	return ParseRules(builtinRules)
}

// ParseRules decodes a YAML rule table.
func ParseRules(data []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	for i, r := range rules {
		if len(r.Keywords) == 0 || r.EN == "" {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Name, ErrInvalidRule)
		}
	}
	return rules, nil
}

// Match returns the first rule with a keyword in message. Keywords match
// whole words or whole phrases, case-insensitively.
func (rs Rules) Match(message string) (Rule, bool) {
	text := normalize(message)
	if text == "  " {
		return Rule{}, false
	}
	for _, r := range rs {
		for _, kw := range r.Keywords {
			if strings.Contains(text, normalize(kw)) {
				return r, true
			}
		}
	}
	return Rule{}, false
}

// normalize lowercases s and reduces it to space-separated words padded
// with a space on each side.
func normalize(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
	})
	return " " + strings.Join(words, " ") + " "
}
