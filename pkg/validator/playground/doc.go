// Package playground runs dto rule specs on github.com/go-playground/validator.
//
// Constraints with a go-playground equivalent are translated into tags and
// checked with Validate.Var, one constraint at a time:
//
//	required|min:3|in:a,b   →   dto_required, min=3, oneof=a b
//
// Constraints without an equivalent (regex, same, confirmed, date, ...) are
// delegated to a fallback validator.Engine, the built-in rule engine unless
// WithFallback says otherwise. Failures carry the same translation keys and
// messages as the rule engine, so both engines can be swapped behind
// validator.Engine.
//
//	engine := playground.New(playground.WithLogger(logger))
//	rec := dto.FromMap[*Signup](input, dto.WithEngine(engine))
package playground
