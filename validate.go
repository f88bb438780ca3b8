package dto

import (
	"github.com/dmitrymomot/dto/pkg/validator"
)

// Rules returns a copy of the current rule set.
func (r *Record) Rules() map[string]validator.RuleSpec {
	return validator.CloneRules(r.rules)
}

// SetRules replaces the whole rule set.
func (r *Record) SetRules(rules map[string]validator.RuleSpec) *Record {
	r.rules = validator.CloneRules(rules)
	return r
}

// MergeRules overlays rules on the current set; fields present in rules
// replace existing ones, others are kept.
func (r *Record) MergeRules(rules map[string]validator.RuleSpec) *Record {
	if len(rules) == 0 {
		return r
	}
	if r.rules == nil {
		r.rules = make(map[string]validator.RuleSpec, len(rules))
	}
	for field, spec := range rules {
		r.rules[field] = append(validator.RuleSpec(nil), spec...)
	}
	return r
}

// UseEngine switches the validation engine for subsequent Validate calls.
func (r *Record) UseEngine(engine validator.Engine) *Record {
	WithEngine(engine)(r)
	return r
}

// Validate checks the attributes against the rule set and, when the record
// type implements Checker, its extra rules. The collected errors replace
// those of any previous run; a passing run leaves Errors empty.
func (r *Record) Validate() bool {
	errs := r.validationEngine().Validate(r.attributesView(), r.Rules())

	if c, ok := r.owner.(Checker); ok {
		if err := validator.Apply(c.Checks()...); err != nil {
			errs = append(errs, validator.ExtractValidationErrors(err)...)
		}
	}

	if errs.IsEmpty() {
		r.errors = nil
		return true
	}
	r.errors = errs
	return false
}

// MustValidate is Validate returning a *ValidationFailedError on failure.
func (r *Record) MustValidate() error {
	if r.Validate() {
		return nil
	}
	return &ValidationFailedError{Type: r.TypeName(), Errors: r.Errors()}
}

// Errors returns the failures of the last Validate call, nil if it passed or
// never ran.
func (r *Record) Errors() validator.ValidationErrors {
	if r.errors == nil {
		return nil
	}
	return append(validator.ValidationErrors(nil), r.errors...)
}

func (r *Record) attributesView() map[string]any {
	if r.attributes == nil {
		return map[string]any{}
	}
	return r.attributes
}
