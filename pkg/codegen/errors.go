package codegen

import "errors"

var (
	ErrInvalidSchema = errors.New("invalid schema")
	ErrGenerate      = errors.New("failed to generate code")
)
