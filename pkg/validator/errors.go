package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidRuleSpec is returned when a rule specification has an unsupported shape.
	ErrInvalidRuleSpec = errors.New("invalid rule specification")

	// ErrUnknownConstraint is reported when a rule names a constraint the engine does not know.
	ErrUnknownConstraint = errors.New("unknown constraint")
)
