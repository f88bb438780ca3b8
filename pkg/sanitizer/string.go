package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Words splits s into words. Any rune that is neither a letter nor a digit
// separates words, and so does a case transition: a lower-case letter or digit
// followed by an upper-case letter ("firstName"), or the last upper-case letter
// of an acronym followed by a lower-case letter ("HTTPCode").
func Words(s string) []string {
	runes := []rune(strings.TrimSpace(s))

	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}

// ToSnakeCase converts a string to snake_case.
//
//	ToSnakeCase("FirstName")  // "first_name"
//	ToSnakeCase("HTTPCode")   // "http_code"
//	ToSnakeCase("user id")    // "user_id"
func ToSnakeCase(s string) string {
	return join(Words(s), "_")
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	return join(Words(s), "-")
}

// ToCamelCase converts a string to camelCase, with the first word lowercased
// and subsequent words capitalized.
func ToCamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	// A Caser keeps state between calls, so each conversion gets its own.
	caser := cases.Title(language.Und)

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

// ToPascalCase converts a string to PascalCase. Used to derive exported Go
// identifiers from attribute names ("first_name" -> "FirstName").
func ToPascalCase(s string) string {
	caser := cases.Title(language.Und)

	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

func join(words []string, sep string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}
