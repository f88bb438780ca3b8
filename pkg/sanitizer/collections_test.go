package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dto/pkg/sanitizer"
)

func TestSanitizeMapKeys(t *testing.T) {
	t.Run("converts keys", func(t *testing.T) {
		input := map[string]any{"FirstName": "Hello", "secondValue": 123}
		result := sanitizer.SanitizeMapKeys(input, sanitizer.ToSnakeCase)
		assert.Equal(t, map[string]any{"first_name": "Hello", "second_value": 123}, result)
	})

	t.Run("drops keys that sanitize to empty", func(t *testing.T) {
		input := map[string]int{"  ": 1, "ok": 2}
		result := sanitizer.SanitizeMapKeys(input, sanitizer.Trim)
		assert.Equal(t, map[string]int{"ok": 2}, result)
	})
}

func TestTrimStrings(t *testing.T) {
	input := map[string]any{
		"name":   "  John ",
		"age":    30,
		"tags":   []string{" a ", "b "},
		"mixed":  []any{" x ", 1},
		"nested": map[string]any{"city": " Berlin "},
		"none":   nil,
	}

	result := sanitizer.TrimStrings(input)

	assert.Equal(t, "John", result["name"])
	assert.Equal(t, 30, result["age"])
	assert.Equal(t, []string{"a", "b"}, result["tags"])
	assert.Equal(t, []any{"x", 1}, result["mixed"])
	assert.Equal(t, map[string]any{"city": "Berlin"}, result["nested"])
	assert.Nil(t, result["none"])
	assert.Equal(t, "  John ", input["name"], "input must not be modified")
}

func TestCompose(t *testing.T) {
	conv := sanitizer.Compose(sanitizer.Trim, sanitizer.ToSnakeCase)
	assert.Equal(t, "first_name", conv("  FirstName "))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}
