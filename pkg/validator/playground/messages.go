package playground

import (
	"fmt"
	"reflect"

	gpvalidator "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/dto/pkg/validator"
)

func fieldError(field, constraint string, fe gpvalidator.FieldError) validator.ValidationError {
	name, params := validator.ParseConstraint(constraint)
	values := map[string]any{"field": field}
	if len(params) == 1 {
		values[name] = params[0]
	}
	return validator.ValidationError{
		Field:             field,
		Message:           errorMessage(fe),
		TranslationKey:    "validation." + name,
		TranslationValues: values,
	}
}

// errorMessage returns a human-readable message for a go-playground error.
func errorMessage(fe gpvalidator.FieldError) string {
	if fe == nil {
		return "is invalid"
	}
	switch fe.Tag() {
	case tagRequired:
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
