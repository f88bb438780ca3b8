package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dto/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/a.yaml":     {Data: []byte("en:\n  greeting: hi\n  nested:\n    one: \"1\"\n")},
		"locales/b.json":     {Data: []byte(`{"en": {"nested": {"two": "2"}}, "de": {"greeting": "hallo"}}`)},
		"locales/readme.txt": {Data: []byte("ignored")},
		"locales/sub/c.yaml": {Data: []byte("en:\n  greeting: ignored\n")},
	}

	data, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "hi", data["en"]["greeting"])
	assert.Equal(t, map[string]any{"one": "1", "two": "2"}, data["en"]["nested"])
	assert.Equal(t, "hallo", data["de"]["greeting"])
}

func TestFSAdapter_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "nope").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("no catalog files", func(t *testing.T) {
		fsys := fstest.MapFS{"l/readme.md": {Data: []byte("x")}}
		_, err := i18n.NewFSAdapter(fsys, "l").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("broken file", func(t *testing.T) {
		fsys := fstest.MapFS{"l/a.json": {Data: []byte("{")}}
		_, err := i18n.NewFSAdapter(fsys, "l").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := i18n.DefaultCatalog().Load(cctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestMultiAdapter(t *testing.T) {
	base := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"required": "base", "email": "base email"}},
	}}
	override := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"required": "custom"}},
	}}

	data, err := i18n.MultiAdapter{base, nil, override}.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"required": "custom", "email": "base email"}, data["en"]["validation"])
	assert.Equal(t, "base", base.Data["en"]["validation"].(map[string]any)["required"], "sources are not modified")
}

func TestDefaultCatalog(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), i18n.DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en"}, tr.SupportedLanguages())
	assert.Equal(t, "The second field is required.", tr.T("en", "validation.required", "field", "second"))
	assert.Equal(t, "name muss mindestens 3 Zeichen lang sein.", tr.T("de", "validation.min.string", "field", "name", "min", "3"))
	assert.Equal(t, "The v field format is invalid.", tr.T("de", "validation.regex", "field", "v"), "keys missing in German fall back to English")
	assert.Equal(t, "v muss eine gültige URL sein.", tr.T("de", "validation.url", "field", "v"))
	assert.Equal(t, "The n field must be greater than 5.", tr.T("en", "validation.gt.numeric", "field", "n", "gt", 5))
}

func TestParsers(t *testing.T) {
	ctx := context.Background()

	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("a.YML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("dir/a.json"))
	assert.Nil(t, i18n.NewParserForFile("a.toml"))

	_, err := i18n.NewYAMLParser().Parse(ctx, "en: plain")
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	_, err = i18n.NewYAMLParser().Parse(ctx, "")
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	_, err = i18n.NewJSONParser().Parse(ctx, `{"en": "plain"}`)
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = i18n.NewJSONParser().Parse(cctx, `{}`)
	assert.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)

	assert.True(t, i18n.NewYAMLParser().SupportsFileExtension(".yaml"))
	assert.False(t, i18n.NewJSONParser().SupportsFileExtension("yaml"))
}
