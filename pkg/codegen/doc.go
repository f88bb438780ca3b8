// Package codegen generates typed record types from YAML schemas.
//
// For every field the generated type gets GetX/SetX methods backed by the
// dto.Record primitives, and DefaultRules returns the declared rules. It is
// the engine behind "dtoctl gen".
package codegen
