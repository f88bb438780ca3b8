package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dto/pkg/validator"
)

func sampleErrors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{
		Field:             "second",
		Message:           "field is required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{"field": "second"},
	})
	errs.Add(validator.ValidationError{
		Field:             "first",
		Message:           "must be a string",
		TranslationKey:    "validation.string",
		TranslationValues: map[string]any{"field": "first"},
	})
	errs.Add(validator.ValidationError{
		Field:             "second",
		Message:           "must be an integer",
		TranslationKey:    "validation.integer",
		TranslationValues: map[string]any{"field": "second"},
	})
	return errs
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("lists field and message pairs", func(t *testing.T) {
		assert.Equal(t,
			"validation failed: second: field is required; first: must be a string; second: must be an integer",
			sampleErrors().Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	errs := sampleErrors()

	assert.True(t, errs.Has("second"))
	assert.False(t, errs.Has("third"))
	assert.Equal(t, []string{"field is required", "must be an integer"}, errs.Get("second"))
	assert.Nil(t, errs.Get("third"))
	assert.Len(t, errs.GetErrors("second"), 2)
	assert.Equal(t, []string{"second", "first"}, errs.Fields())
	assert.Equal(t, "field is required", errs.First())
	assert.Equal(t, "must be a string", errs.FirstFor("first"))
	assert.Empty(t, errs.FirstFor("third"))
	assert.Equal(t, map[string][]string{
		"second": {"field is required", "must be an integer"},
		"first":  {"must be a string"},
	}, errs.Messages())
}

func TestValidationErrors_Empty(t *testing.T) {
	var errs validator.ValidationErrors

	assert.True(t, errs.IsEmpty())
	assert.Empty(t, errs.First())
	assert.Nil(t, errs.Messages())
	assert.Empty(t, errs.Fields())
}

func TestValidationErrors_Is(t *testing.T) {
	err := fmt.Errorf("create user: %w", sampleErrors())

	assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	assert.True(t, validator.IsValidationError(err))

	extracted := validator.ExtractValidationErrors(err)
	require.NotNil(t, extracted)
	assert.True(t, extracted.Has("first"))

	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidEmail("email", "user@example.com"),
			validator.InListString("role", "admin", []string{"admin", "user"}),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidEmail("email", "not-an-email"),
			validator.ValidUUID("id", "123"),
			validator.ValidURL("site", "https://example.com"),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"email", "id"}, errs.Fields())
		assert.Equal(t, "validation.email", errs.GetErrors("email")[0].TranslationKey)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

type upperTranslator struct{}

func (upperTranslator) T(lang, key string, args ...any) string {
	if key == "validation.string" {
		return key
	}
	var field string
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == "field" {
			field = fmt.Sprint(args[i+1])
		}
	}
	return strings.ToUpper(lang + " " + field + " " + key)
}

func TestValidationErrors_Translate(t *testing.T) {
	errs := sampleErrors()
	translated := errs.Translate(upperTranslator{}, "de")

	require.Len(t, translated, 3)
	assert.Equal(t, "DE SECOND VALIDATION.REQUIRED", translated[0].Message)
	assert.Equal(t, "must be a string", translated[1].Message, "missing translation keeps original message")
	assert.Equal(t, "field is required", errs[0].Message, "source collection is not modified")

	assert.Nil(t, validator.ValidationErrors(nil).Translate(upperTranslator{}, "en"))
	assert.Equal(t, errs, errs.Translate(nil, "en"))
}
