package validator

import (
	"fmt"
	"strconv"
)

// Control words change how a field is evaluated and never fail by themselves.
const (
	ctrlNullable  = "nullable"
	ctrlSometimes = "sometimes"
	ctrlBail      = "bail"
)

func isControl(name string) bool {
	switch name {
	case ctrlNullable, ctrlSometimes, ctrlBail:
		return true
	}
	return false
}

func builtinConstraints() map[string]constraintEntry {
	explicit := map[string]Constraint{
		"string":      stringConstraint,
		"integer":     integerConstraint,
		"numeric":     numericConstraint,
		"boolean":     booleanConstraint,
		"array":       arrayConstraint,
		"map":         mapConstraint,
		"date":        dateConstraint,
		"date_format": dateFormatConstraint,
		"min":         minConstraint,
		"max":         maxConstraint,
		"size":        sizeConstraint,
		"between":     betweenConstraint,
		"gt":          compareConstraint("gt"),
		"gte":         compareConstraint("gte"),
		"lt":          compareConstraint("lt"),
		"lte":         compareConstraint("lte"),
		"email":       emailConstraint,
		"url":         urlConstraint,
		"uuid":        uuidConstraint,
		"alpha":       alphaConstraint,
		"alpha_num":   alphaNumConstraint,
		"alpha_dash":  alphaDashConstraint,
		"regex":       regexConstraint,
		"not_regex":   notRegexConstraint,
		"in":          inConstraint,
		"not_in":      notInConstraint,
		"same":        sameConstraint,
		"different":   differentConstraint,
		"confirmed":   confirmedConstraint,
	}
	implicit := map[string]Constraint{
		"required": requiredConstraint,
		"present":  presentConstraint,
		"filled":   filledConstraint,
		"accepted": acceptedConstraint,
	}

	out := make(map[string]constraintEntry, len(explicit)+len(implicit))
	for name, fn := range explicit {
		out[name] = constraintEntry{fn: fn}
	}
	for name, fn := range implicit {
		out[name] = constraintEntry{fn: fn, implicit: true}
	}
	return out
}

func newError(field, key, message string, values map[string]any) ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func failing(err ValidationError) Rule {
	return Rule{Check: func() bool { return false }, Error: err}
}

func unknownConstraintError(field, name string) ValidationError {
	return newError(field, "validation.unknown_rule",
		fmt.Sprintf("%s: %s", ErrUnknownConstraint, name),
		map[string]any{"rule": name})
}

// invalidParams is reported when a constraint is declared with missing or
// malformed parameters, e.g. "min" or "between:a".
func invalidParams(f Field, name string) Rule {
	return failing(newError(f.Name, "validation.invalid_rule",
		fmt.Sprintf("has an invalid %q rule", name),
		map[string]any{"rule": name}))
}

func floatParams(f Field, n int) ([]float64, bool) {
	if len(f.Params) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, p := range f.Params {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
