package playground

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/dto/pkg/validator"
)

const (
	tagRequired = "dto_required"
	tagString   = "dto_string"
	tagInteger  = "dto_integer"
	tagArray    = "dto_array"
	tagMap      = "dto_map"
)

// customValidations are registered on every engine; go-playground has no
// dynamic type checks for interface values.
var customValidations = map[string]gpvalidator.Func{
	tagRequired: func(fl gpvalidator.FieldLevel) bool {
		v := fl.Field()
		switch v.Kind() {
		case reflect.String:
			return strings.TrimSpace(v.String()) != ""
		case reflect.Slice, reflect.Map, reflect.Array:
			return v.Len() > 0
		case reflect.Pointer, reflect.Interface:
			return !v.IsNil()
		}
		return true
	},
	tagString: func(fl gpvalidator.FieldLevel) bool {
		return fl.Field().Type() == reflect.TypeFor[string]()
	},
	tagInteger: func(fl gpvalidator.FieldLevel) bool {
		v := fl.Field()
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			return !math.IsInf(f, 0) && f == math.Trunc(f)
		case reflect.String:
			_, err := strconv.ParseInt(strings.TrimSpace(v.String()), 10, 64)
			return err == nil
		}
		return false
	},
	tagArray: func(fl gpvalidator.FieldLevel) bool {
		k := fl.Field().Kind()
		return k == reflect.Slice || k == reflect.Array
	},
	tagMap: func(fl gpvalidator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Map
	},
}

var simpleTags = map[string]string{
	"required":  tagRequired,
	"filled":    tagRequired,
	"string":    tagString,
	"integer":   tagInteger,
	"numeric":   "numeric",
	"boolean":   "boolean",
	"array":     tagArray,
	"map":       tagMap,
	"email":     "email",
	"url":       "url",
	"uuid":      "uuid",
	"alpha":     "alphaunicode",
	"alpha_num": "alphanumunicode",
}

var sizeTags = map[string]string{
	"min":  "min",
	"max":  "max",
	"size": "len",
	"gt":   "gt",
	"gte":  "gte",
	"lt":   "lt",
	"lte":  "lte",
}

// TagFor translates one constraint ("min:3") into a go-playground tag
// ("min=3"). It reports false for constraints that have no equivalent.
func TagFor(constraint string) (string, bool) {
	name, params := validator.ParseConstraint(constraint)

	if tag, ok := simpleTags[name]; ok && len(params) == 0 {
		return tag, true
	}
	if tag, ok := sizeTags[name]; ok {
		if len(params) != 1 || !isNumber(params[0]) {
			return "", false
		}
		return tag + "=" + params[0], true
	}

	switch name {
	case "between":
		if len(params) != 2 || !isNumber(params[0]) || !isNumber(params[1]) {
			return "", false
		}
		return "min=" + params[0] + ",max=" + params[1], true
	case "in":
		if len(params) == 0 {
			return "", false
		}
		for _, p := range params {
			if p == "" || strings.ContainsAny(p, " '") {
				return "", false
			}
		}
		return "oneof=" + strings.Join(params, " "), true
	}
	return "", false
}

// Tags translates a whole rule spec. Control constraints are dropped;
// constraints without an equivalent are returned separately.
//
//	Tags(validator.Spec("required|min:3|regex:/^a/")) // "dto_required,min=3", ["regex:/^a/"]
func Tags(spec validator.RuleSpec) (string, []string) {
	var tags, rest []string
	for _, c := range spec {
		name, _ := validator.ParseConstraint(c)
		if isControl(name) {
			continue
		}
		if tag, ok := TagFor(c); ok {
			tags = append(tags, tag)
			continue
		}
		rest = append(rest, c)
	}
	return strings.Join(tags, ","), rest
}

func isControl(name string) bool {
	return name == "nullable" || name == "sometimes" || name == "bail"
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
