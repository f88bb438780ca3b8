package validator

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// InListString validates that value is one of allowedValues.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: newError(field, "validation.in",
			fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			map[string]any{"values": strings.Join(allowedValues, ", ")}),
	}
}

// NotInListString validates that value is none of forbiddenValues.
func NotInListString(field, value string, forbiddenValues []string) Rule {
	return Rule{
		Check: func() bool {
			return !slices.Contains(forbiddenValues, value)
		},
		Error: newError(field, "validation.not_in",
			fmt.Sprintf("must not be one of: %s", strings.Join(forbiddenValues, ", ")),
			map[string]any{"values": strings.Join(forbiddenValues, ", ")}),
	}
}

// inConstraint compares the textual form of scalar values, so "in:1,2"
// accepts both the string "1" and the integer 1.
func inConstraint(f Field) Rule {
	if len(f.Params) == 0 {
		return invalidParams(f, "in")
	}
	return InListString(f.Name, stringify(f.Value), f.Params)
}

func notInConstraint(f Field) Rule {
	if len(f.Params) == 0 {
		return invalidParams(f, "not_in")
	}
	return NotInListString(f.Name, stringify(f.Value), f.Params)
}

func sameConstraint(f Field) Rule {
	if len(f.Params) != 1 {
		return invalidParams(f, "same")
	}
	other := f.Params[0]
	return Rule{
		Check: func() bool {
			v, ok := f.Attributes[other]
			return ok && reflect.DeepEqual(v, f.Value)
		},
		Error: newError(f.Name, "validation.same",
			fmt.Sprintf("must match %s", other),
			map[string]any{"other": other}),
	}
}

func differentConstraint(f Field) Rule {
	if len(f.Params) != 1 {
		return invalidParams(f, "different")
	}
	other := f.Params[0]
	return Rule{
		Check: func() bool {
			v, ok := f.Attributes[other]
			return !ok || !reflect.DeepEqual(v, f.Value)
		},
		Error: newError(f.Name, "validation.different",
			fmt.Sprintf("must be different from %s", other),
			map[string]any{"other": other}),
	}
}

// confirmedConstraint expects a sibling attribute named <field>_confirmation
// holding the same value.
func confirmedConstraint(f Field) Rule {
	other := f.Name + "_confirmation"
	return Rule{
		Check: func() bool {
			v, ok := f.Attributes[other]
			return ok && reflect.DeepEqual(v, f.Value)
		},
		Error: newError(f.Name, "validation.confirmed", "confirmation does not match", nil),
	}
}
