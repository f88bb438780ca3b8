// Package validator evaluates declarative, per-attribute rule specs against
// untyped attribute maps and reports failures as a translatable error
// collection.
//
// Rule specs follow the familiar pipe syntax:
//
//	rules := validator.Rules(map[string]string{
//	    "name":  "required|string|max:100",
//	    "email": "required|email",
//	    "age":   "nullable|integer|gte:18",
//	})
//
//	errs := validator.Default().Validate(attrs, rules)
//	if !errs.IsEmpty() {
//	    fmt.Println(errs.First())
//	}
//
// A spec may also be given as a list, which is required when a regex
// parameter contains a pipe: validator.RuleSpec{"required", "regex:^(a|b)$"}.
//
// # Architecture
//
// Each constraint is a function that turns a Field into a Rule: a Check
// closure plus a ValidationError carrying a message, a translation key and
// the values needed to render it. Constraint families live in their own
// files (presence_rules.go, type_rules.go, size_rules.go, format_rules.go,
// choice_rules.go). RuleEngine maps constraint names to those functions and
// evaluates fields in sorted order.
//
// Absent attributes and blank strings are only checked by implicit
// constraints (required, present, filled, accepted). The control words
// nullable, sometimes and bail change evaluation: nullable skips a field
// whose value is nil, sometimes skips an absent field and bail stops at the
// first failure.
//
// Unknown constraint names never panic; they are reported as an error on the
// field with translation key "validation.unknown_rule".
//
// Core building blocks:
//   - Rule              – Check func and error meta, usable directly with Apply
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//   - Engine            – interface implemented by RuleEngine and adapters
//
// # Error Handling
//
// ValidationErrors implements Is (matching ErrValidationFailed), so callers
// can use errors.Is/As to detect validation problems while preserving rich
// details. Individual field errors can be inspected with Has, Get, GetErrors,
// FirstFor and Fields.
package validator
