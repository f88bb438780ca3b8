package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// JSONParser implements the Parser interface for JSON files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, translations := range data {
		transMap, ok := translations.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, expected object", ErrFailedToParseJSON, lang, translations)
		}
		result[lang] = transMap
	}

	return result, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
