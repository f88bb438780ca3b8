// Package dto provides validated data transfer records: dynamic attribute
// bags with Laravel-style rule strings.
//
// A record type embeds Record and optionally declares its default rules:
//
//	type ExampleData struct {
//		dto.Record
//	}
//
//	func (*ExampleData) DefaultRules() map[string]validator.RuleSpec {
//		return validator.Rules(map[string]string{
//			"first":  "required|string",
//			"second": "required|integer",
//		})
//	}
//
// Records are built from maps or JSON and validated on demand:
//
//	ex := dto.FromMap[*ExampleData](map[string]any{"first": "Hello", "second": 123})
//	if !ex.Validate() {
//		return ex.Errors()
//	}
//
// # Accessors
//
// Attributes are read with Get, GetRequired and the typed helpers
// (GetString, GetInt, Value). Call dispatches dynamic accessor names:
// "getFirstName" reads the "first_name" attribute, "setFirstName" writes it.
// Unknown names fail with a *MethodNotFoundError.
//
// # Validation
//
// Rules default to the type's DefaultRules and can be replaced with SetRules
// or overlaid with MergeRules. Validate runs the configured
// validator.Engine, validator.Default() unless WithEngine says otherwise.
// MustValidate returns a *ValidationFailedError instead of a bool; it
// matches ErrValidationFailed with errors.Is.
//
// A Record is not safe for concurrent use.
package dto
