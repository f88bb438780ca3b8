package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dto/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"welcome": "Hello, %{name}!",
			"validation": map[string]any{
				"required": "%{field} is required",
				"min": map[string]any{
					"string": "%{field} needs %{min} characters",
				},
			},
			"flat.key": "flat value",
		},
		"de": {
			"welcome": "Hallo, %{name}!",
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name     string
		lang     string
		key      string
		args     []any
		expected string
	}{
		{name: "simple substitution", lang: "en", key: "welcome", args: []any{"name", "John"}, expected: "Hello, John!"},
		{name: "other language", lang: "de", key: "welcome", args: []any{"name", "Jan"}, expected: "Hallo, Jan!"},
		{name: "nested key with number", lang: "en", key: "validation.min.string", args: []any{"field", "name", "min", 3}, expected: "name needs 3 characters"},
		{name: "flat dotted key", lang: "en", key: "flat.key", expected: "flat value"},
		{name: "missing key falls back to default language", lang: "de", key: "validation.required", args: []any{"field", "email"}, expected: "email is required"},
		{name: "unsupported language falls back", lang: "fr", key: "welcome", args: []any{"name", "Ann"}, expected: "Hello, Ann!"},
		{name: "unknown placeholder kept", lang: "en", key: "welcome", expected: "Hello, %{name}!"},
		{name: "odd args ignore last", lang: "en", key: "welcome", args: []any{"name", "Bob", "extra"}, expected: "Hello, Bob!"},
		{name: "missing key returns key", lang: "en", key: "nope.missing", expected: "nope.missing"},
		{name: "map value is not a translation", lang: "en", key: "validation.min", expected: "validation.min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_Options(t *testing.T) {
	t.Run("fallback to key disabled", func(t *testing.T) {
		tr := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, tr.T("en", "missing"))
	})

	t.Run("default language", func(t *testing.T) {
		tr := newTestTranslator(t, i18n.WithDefaultLanguage("de"))
		assert.Equal(t, "Hallo, X!", tr.T("fr", "welcome", "name", "X"))
	})

	t.Run("logs missing translations", func(t *testing.T) {
		var buf bytes.Buffer
		tr := newTestTranslator(t,
			i18n.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
			i18n.WithMissingTranslationsLogging(true),
		)
		tr.T("en", "missing")
		assert.Contains(t, buf.String(), "translation not found")
		assert.Contains(t, buf.String(), "key=missing")
	})
}

func TestTranslator_Introspection(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, []string{"de", "en"}, tr.SupportedLanguages())
	assert.True(t, tr.HasTranslation("en", "validation.required"))
	assert.False(t, tr.HasTranslation("de", "validation.required"))
	assert.False(t, tr.HasTranslation("fr", "welcome"))
}

func TestNewTranslator_Errors(t *testing.T) {
	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
	assert.Error(t, err)

	_, err = i18n.NewTranslator(context.Background(), failingAdapter{})
	assert.ErrorIs(t, err, errLoad)
}

var errLoad = errors.New("load failed")

type failingAdapter struct{}

func (failingAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return nil, errLoad
}

func TestMatchLanguage(t *testing.T) {
	supported := []string{"en", "de"}

	tests := []struct {
		preferred string
		expected  string
	}{
		{preferred: "de", expected: "de"},
		{preferred: "de-AT", expected: "de"},
		{preferred: "fr;q=0.9, de;q=0.8", expected: "de"},
		{preferred: "en-US,en;q=0.9", expected: "en"},
		{preferred: "", expected: "en"},
		{preferred: "!!", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.preferred, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.MatchLanguage(tt.preferred, supported, "en"))
		})
	}

	tr := newTestTranslator(t)
	assert.Equal(t, "de", tr.Match("de-CH"))
}
