package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language option is given.
const DefaultLanguage = "en"

// Translator renders translation keys with named placeholders. Translations
// are loaded once in NewTranslator; afterwards the translator is read-only
// and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested language,
// or a key within it, is missing.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey determines whether T returns the key itself when no
// translation exists. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// NewTranslator loads translations from adapter.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.MultiAdapter{
//	    i18n.DefaultCatalog(),
//	    i18n.NewFSAdapter(os.DirFS("locales"), "."),
//	})
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, trans := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if trans == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// T translates a dotted key for lang. Arguments are key/value pairs
// substituted into "%{key}" placeholders; values are formatted with fmt.
// A missing language or key falls back to the default language, then to the
// key itself when fallback is enabled, else to an empty string.
//
//	// "validation.min.string": "%{field} must be at least %{min} characters"
//	tr.T("en", "validation.min.string", "field", "name", "min", 3)
func (t *Translator) T(lang, key string, args ...any) string {
	if tmpl, ok := t.find(lang, key); ok {
		return substitute(tmpl, args)
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.find(t.defaultLang, key); ok {
			return substitute(tmpl, args)
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return key
	}
	return ""
}

func (t *Translator) find(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// Match picks the best supported language for a BCP 47 tag or an
// Accept-Language header value ("de-AT", "fr;q=0.8, de"), falling back to
// the default language.
func (t *Translator) Match(preferred string) string {
	return MatchLanguage(preferred, t.SupportedLanguages(), t.defaultLang)
}

// MatchLanguage matches preferred against supported using x/text/language.
func MatchLanguage(preferred string, supported []string, fallback string) string {
	if preferred == "" || len(supported) == 0 {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	supportedTags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		supportedTags = append(supportedTags, tag)
		names = append(names, s)
	}
	if len(supportedTags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(supportedTags).Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return names[idx]
}

// lookup traverses nested maps using dot-separated keys.
func lookup(m map[string]any, key string) (any, bool) {
	// Flat keys containing dots take precedence over nesting.
	if v, ok := m[key]; ok {
		return v, true
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []any) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[fmt.Sprint(args[i])] = fmt.Sprint(args[i+1])
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
