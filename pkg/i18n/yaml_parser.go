package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse expects language codes at the root:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, expected map", ErrFailedToParseYAML, lang, val)
		}
		result[lang] = transMap
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrFailedToParseYAML)
	}

	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
