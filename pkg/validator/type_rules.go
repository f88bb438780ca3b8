package validator

import (
	"fmt"
)

func stringConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			_, ok := f.Value.(string)
			return ok
		},
		Error: newError(f.Name, "validation.string", "must be a string", nil),
	}
}

func integerConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return isInteger(f.Value)
		},
		Error: newError(f.Name, "validation.integer", "must be an integer", nil),
	}
}

func numericConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return isNumeric(f.Value)
		},
		Error: newError(f.Name, "validation.numeric", "must be a number", nil),
	}
}

func booleanConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return isBoolean(f.Value)
		},
		Error: newError(f.Name, "validation.boolean", "must be true or false", nil),
	}
}

func arrayConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return isList(f.Value)
		},
		Error: newError(f.Name, "validation.array", "must be a list", nil),
	}
}

func mapConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return isMap(f.Value)
		},
		Error: newError(f.Name, "validation.map", "must be an object", nil),
	}
}

func dateConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			_, ok := parseDate(f.Value)
			return ok
		},
		Error: newError(f.Name, "validation.date", "must be a valid date", nil),
	}
}

// dateFormatConstraint takes a Go reference layout, e.g. "date_format:2006-01-02".
func dateFormatConstraint(f Field) Rule {
	if len(f.Params) != 1 || f.Params[0] == "" {
		return invalidParams(f, "date_format")
	}
	layout := f.Params[0]
	return Rule{
		Check: func() bool {
			if _, ok := f.Value.(string); !ok {
				return false
			}
			_, ok := parseDate(f.Value, layout)
			return ok
		},
		Error: newError(f.Name, "validation.date_format",
			fmt.Sprintf("must match the format %s", layout),
			map[string]any{"format": layout}),
	}
}
