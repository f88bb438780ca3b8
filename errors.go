package dto

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/dto/pkg/validator"
)

var (
	ErrMethodNotFound    = errors.New("method not found")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrAttributeType     = errors.New("attribute has unexpected type")
	// ErrValidationFailed matches both *ValidationFailedError and
	// validator.ValidationErrors.
	ErrValidationFailed = validator.ErrValidationFailed
	ErrInvalidJSON      = errors.New("invalid JSON object")
)

// MethodNotFoundError is returned by Call for names that are neither a
// getter nor a setter.
type MethodNotFoundError struct {
	Type   string
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("method %s::%s() does not exist", e.Type, e.Method)
}

func (e *MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}

// AttributeNotFoundError is returned when a required attribute was never set.
type AttributeNotFoundError struct {
	Type string
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("attribute %q not found in %s", e.Name, e.Type)
}

func (e *AttributeNotFoundError) Is(target error) bool {
	return target == ErrAttributeNotFound
}

// AttributeTypeError is returned by typed accessors when the stored value
// cannot be represented as the requested type.
type AttributeTypeError struct {
	Name string
	Want string
	Got  any
}

func (e *AttributeTypeError) Error() string {
	return fmt.Sprintf("attribute %q is %T, not %s", e.Name, e.Got, e.Want)
}

func (e *AttributeTypeError) Is(target error) bool {
	return target == ErrAttributeType
}

// ValidationFailedError is returned by MustValidate. It unwraps to the
// validator.ValidationErrors collection.
type ValidationFailedError struct {
	Type   string
	Errors validator.ValidationErrors
}

// Error reports the first failure.
func (e *ValidationFailedError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("the given %s data is invalid", e.Type)
	}
	first := e.Errors[0]
	return fmt.Sprintf("%s: %s", first.Field, first.Message)
}

func (e *ValidationFailedError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationFailedError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors
}
