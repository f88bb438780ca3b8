// Package sanitizer provides string and collection helpers used to normalise
// attribute names and untyped input before it lands in a record.
//
// The functions are grouped conceptually into two areas:
//
//   - Strings – trimming and conversion between common naming conventions
//     (snake_case, kebab-case, camelCase, PascalCase). Word boundaries are
//     detected on separators and on case transitions, so "FirstName",
//     "firstName" and "first name" all map to "first_name".
//
//   - Collections – utilities for rewriting map keys and trimming string
//     values held in untyped maps.
//
// The package is stateless. For convenience the higher-order Apply and
// Compose helpers allow the creation of sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToSnakeCase,
//	)
//
//	key := clean("  FirstName ") // "first_name"
package sanitizer
