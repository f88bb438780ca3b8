package sanitizer

import "strings"

// SanitizeMapKeys drops entries with empty keys after sanitization to prevent key collisions.
func SanitizeMapKeys[V any](m map[string]V, sanitizer func(string) string) map[string]V {
	result := make(map[string]V, len(m))
	for k, v := range m {
		cleanKey := sanitizer(k)
		if cleanKey != "" {
			result[cleanKey] = v
		}
	}
	return result
}

// TrimStrings trims whitespace from every string value of an untyped map,
// including strings nested in slices and maps. Other values are kept as is.
func TrimStrings(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = trimValue(v)
	}
	return result
}

func trimValue(v any) any {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []string:
		out := make([]string, len(val))
		for i, s := range val {
			out[i] = strings.TrimSpace(s)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = trimValue(item)
		}
		return out
	case map[string]any:
		return TrimStrings(val)
	default:
		return v
	}
}
