// Package i18n provides the English/Vietnamese string tables of the page
// and the language toggle.
//
// Lookups fall back to English and then to the key itself, so a missing
// translation shows up on screen instead of disappearing. The chosen
// language is the only thing the application persists.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rimiko/showcase/internal/pref"
)

// Language is a supported interface language.
type Language string

const (
	English    Language = "en"
	Vietnamese Language = "vi"
)

// DefaultLanguage is used when nothing else matches.
const DefaultLanguage = English

// ErrUnsupported is returned when applying a language without a table.
var ErrUnsupported = errors.New("unsupported language")

//go:embed locales/*.yaml
var locales embed.FS

var (
	supported = []Language{English, Vietnamese}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Vietnamese})
)

// Supported returns the languages with a translation table.
func Supported() []Language {
	return slices.Clone(supported)
}

// Resolve maps a BCP 47 tag such as "vi-VN" or "en_US" to a supported
// language. Unknown or malformed tags resolve to English.
func Resolve(tag string) Language {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return DefaultLanguage
	}
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLanguage
	}
	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return DefaultLanguage
	}
	return supported[index]
}

// Code returns the short label shown on the toggle button.
func (l Language) Code() string {
	return strings.ToUpper(string(l))
}

// Translator holds the string tables and the current language.
type Translator struct {
	tables   map[Language]map[string]string
	current  Language
	store    pref.Store
	onChange []func(Language)
}

// New loads the embedded tables and restores the stored language. A nil
// store disables persistence.
func New(store pref.Store) (*Translator, error) {
	tables := make(map[Language]map[string]string, len(supported))
	for _, lang := range supported {
		table, err := loadTable(lang)
		if err != nil {
			return nil, err
		}
		tables[lang] = table
	}

	t := &Translator{
		tables:  tables,
		current: DefaultLanguage,
		store:   store,
	}
	if store != nil {
		if stored, ok := store.Get(pref.KeyLanguage); ok {
			t.current = Resolve(stored)
		}
	}
	return t, nil
}

func loadTable(lang Language) (map[string]string, error) {
	data, err := locales.ReadFile("locales/" + string(lang) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("reading %s table: %w", lang, err)
	}
	table := make(map[string]string)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing %s table: %w", lang, err)
	}
	return table, nil
}

// Language returns the current language.
func (t *Translator) Language() Language {
	return t.current
}

// T returns the translation of key in the current language.
func (t *Translator) T(key string) string {
	return t.lookup(t.current, key)
}

// Tf formats the translation of key with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// In returns the translation of key in lang.
func (t *Translator) In(lang Language, key string) string {
	return t.lookup(lang, key)
}

func (t *Translator) lookup(lang Language, key string) string {
	if v, ok := t.tables[lang][key]; ok {
		return v
	}
	if v, ok := t.tables[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// OnChange registers fn to run after every language change.
func (t *Translator) OnChange(fn func(Language)) {
	t.onChange = append(t.onChange, fn)
}

// Apply switches to lang and persists the choice. The switch happens even
// when persisting fails; the error is returned for logging.
func (t *Translator) Apply(lang Language) error {
	if _, ok := t.tables[lang]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupported, lang)
	}
	t.current = lang
	for _, fn := range t.onChange {
		fn(lang)
	}
	if t.store == nil {
		return nil
	}
	if err := t.store.Set(pref.KeyLanguage, string(lang)); err != nil {
		return fmt.Errorf("saving language: %w", err)
	}
	return nil
}

// Toggle flips between English and Vietnamese.
func (t *Translator) Toggle() (Language, error) {
	next := Vietnamese
	if t.current == Vietnamese {
		next = English
	}
	return next, t.Apply(next)
}

// Missing returns the English keys that lang does not translate.
func (t *Translator) Missing(lang Language) []string {
	var out []string
	for key := range t.tables[DefaultLanguage] {
		if _, ok := t.tables[lang][key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
