package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

//go:embed locales
var defaultLocales embed.FS

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every JSON and YAML file found directly in dir of fsys.
// Files are read in lexical order and later files override earlier keys.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter works with os.DirFS, embed.FS and testing/fstest maps alike.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// DefaultCatalog returns an adapter over the built-in validation messages.
func DefaultCatalog() *FSAdapter {
	return NewFSAdapter(defaultLocales, "locales")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := parser.Parse(ctx, string(content))
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrFailedToParseFile, filePath, err)
		}
		mergeLanguages(all, parsed)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslations, a.dir)
	}
	return all, nil
}

// MultiAdapter merges several adapters; later adapters override earlier ones
// key by key, so application catalogs can sit on top of DefaultCatalog.
type MultiAdapter []TranslationAdapter

func (m MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, a := range m {
		if a == nil {
			continue
		}
		data, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeLanguages(all, data)
	}
	return all, nil
}

func mergeLanguages(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		mergeTree(dst[lang], translations)
	}
}

// mergeTree deep-merges nested maps, letting src win on leaf conflicts.
func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeTree(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			cp := make(map[string]any, len(srcMap))
			mergeTree(cp, srcMap)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}
