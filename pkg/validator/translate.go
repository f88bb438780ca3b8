package validator

import (
	"maps"
	"slices"
)

// Translate returns a copy of the collection with messages rendered by tr.
// Errors without a translation key, or whose key has no translation (tr
// returns the key itself), keep their original message.
func (ve ValidationErrors) Translate(tr Translator, lang string) ValidationErrors {
	if len(ve) == 0 || tr == nil {
		return ve
	}

	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		out[i] = err
		if err.TranslationKey == "" {
			continue
		}
		msg := tr.T(lang, err.TranslationKey, translationArgs(err.TranslationValues)...)
		if msg != "" && msg != err.TranslationKey {
			out[i].Message = msg
		}
	}
	return out
}

// translationArgs flattens values into key/value pairs in key order.
func translationArgs(values map[string]any) []any {
	args := make([]any, 0, len(values)*2)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		args = append(args, k, values[k])
	}
	return args
}
