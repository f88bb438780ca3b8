package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes a catalog file into language → translations.
type Parser interface {
	// Parse processes the given content string and returns a nested map
	// keyed by language code at the top level.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext; the
	// leading dot is optional.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
