package validator

import (
	"fmt"
	"strconv"
)

var sizeMessages = map[string]map[sizeKind]string{
	"min": {
		sizeString:  "must be at least %s characters long",
		sizeNumeric: "must be at least %s",
		sizeArray:   "must have at least %s items",
	},
	"max": {
		sizeString:  "must be at most %s characters long",
		sizeNumeric: "must be at most %s",
		sizeArray:   "must have at most %s items",
	},
	"size": {
		sizeString:  "must be exactly %s characters long",
		sizeNumeric: "must be %s",
		sizeArray:   "must contain %s items",
	},
	"gt": {
		sizeString:  "must be longer than %s characters",
		sizeNumeric: "must be greater than %s",
		sizeArray:   "must have more than %s items",
	},
	"gte": {
		sizeString:  "must be at least %s characters long",
		sizeNumeric: "must be greater than or equal to %s",
		sizeArray:   "must have %s items or more",
	},
	"lt": {
		sizeString:  "must be shorter than %s characters",
		sizeNumeric: "must be less than %s",
		sizeArray:   "must have less than %s items",
	},
	"lte": {
		sizeString:  "must be at most %s characters long",
		sizeNumeric: "must be less than or equal to %s",
		sizeArray:   "must not have more than %s items",
	},
}

// measured binds a value's size to a comparison against one bound.
func measured(f Field, name string, bound float64, cmp func(size, bound float64) bool) Rule {
	size, kind, ok := sizeOf(f)
	if !ok {
		kind = sizeNumeric
	}
	b := formatNumber(bound)
	return Rule{
		Check: func() bool {
			return ok && cmp(size, bound)
		},
		Error: newError(f.Name, "validation."+name+"."+string(kind),
			fmt.Sprintf(sizeMessages[name][kind], b),
			map[string]any{name: b}),
	}
}

func minConstraint(f Field) Rule {
	p, ok := floatParams(f, 1)
	if !ok {
		return invalidParams(f, "min")
	}
	return measured(f, "min", p[0], func(s, b float64) bool { return s >= b })
}

func maxConstraint(f Field) Rule {
	p, ok := floatParams(f, 1)
	if !ok {
		return invalidParams(f, "max")
	}
	return measured(f, "max", p[0], func(s, b float64) bool { return s <= b })
}

func sizeConstraint(f Field) Rule {
	p, ok := floatParams(f, 1)
	if !ok {
		return invalidParams(f, "size")
	}
	return measured(f, "size", p[0], func(s, b float64) bool { return s == b })
}

func betweenConstraint(f Field) Rule {
	p, ok := floatParams(f, 2)
	if !ok || p[0] > p[1] {
		return invalidParams(f, "between")
	}
	size, kind, measurable := sizeOf(f)
	if !measurable {
		kind = sizeNumeric
	}
	lo, hi := formatNumber(p[0]), formatNumber(p[1])

	var msg string
	switch kind {
	case sizeString:
		msg = fmt.Sprintf("must be between %s and %s characters long", lo, hi)
	case sizeArray:
		msg = fmt.Sprintf("must have between %s and %s items", lo, hi)
	default:
		msg = fmt.Sprintf("must be between %s and %s", lo, hi)
	}

	return Rule{
		Check: func() bool {
			return measurable && size >= p[0] && size <= p[1]
		},
		Error: newError(f.Name, "validation.between."+string(kind), msg,
			map[string]any{"min": lo, "max": hi}),
	}
}

// compareConstraint builds gt/gte/lt/lte. The parameter is either a number
// or the name of another attribute whose size is used as the bound.
func compareConstraint(op string) Constraint {
	cmp := map[string]func(s, b float64) bool{
		"gt":  func(s, b float64) bool { return s > b },
		"gte": func(s, b float64) bool { return s >= b },
		"lt":  func(s, b float64) bool { return s < b },
		"lte": func(s, b float64) bool { return s <= b },
	}[op]

	return func(f Field) Rule {
		if len(f.Params) != 1 {
			return invalidParams(f, op)
		}
		if bound, err := strconv.ParseFloat(f.Params[0], 64); err == nil {
			return measured(f, op, bound, cmp)
		}

		other, ok := f.Attributes[f.Params[0]]
		if !ok {
			return invalidParams(f, op)
		}
		bound, _, ok := sizeOf(Field{Value: other, Spec: f.Spec})
		if !ok {
			return invalidParams(f, op)
		}
		return measured(f, op, bound, cmp)
	}
}
