package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// sizeKind selects how size constraints measure a value and which message they use.
type sizeKind string

const (
	sizeString  sizeKind = "string"
	sizeNumeric sizeKind = "numeric"
	sizeArray   sizeKind = "array"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
	"2006-01-02T15:04:05",
}

// IsNil reports whether v is nil or a typed nil pointer, map, slice, func,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isEmpty treats nil, blank strings and empty collections as empty.
func isEmpty(v any) bool {
	if IsNil(v) {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

func isBlankString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// toFloat converts numeric kinds, json.Number and, when parseStrings is set,
// numeric strings.
func toFloat(v any, parseStrings bool) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		if !parseStrings {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isNumber(v any) bool {
	_, ok := toFloat(v, false)
	return ok
}

func isNumeric(v any) bool {
	_, ok := toFloat(v, true)
	return ok
}

// isInteger accepts integer kinds, whole floats (JSON decoding produces
// float64) and strings holding a base-10 integer.
func isInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		_, err := strconv.ParseInt(n.String(), 10, 64)
		return err == nil
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	}
	return false
}

func isBoolean(v any) bool {
	switch b := v.(type) {
	case bool:
		return true
	case string:
		switch b {
		case "0", "1", "true", "false":
			return true
		}
		return false
	}
	if f, ok := toFloat(v, false); ok {
		return f == 0 || f == 1
	}
	return false
}

func isAccepted(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "on", "1", "true":
			return true
		}
		return false
	}
	f, ok := toFloat(v, false)
	return ok && f == 1
}

func isList(v any) bool {
	if IsNil(v) {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func isMap(v any) bool {
	return !IsNil(v) && reflect.ValueOf(v).Kind() == reflect.Map
}

// sizeOf measures v for min/max/size/between and friends. Numbers are
// measured by value, collections by length and strings by rune count unless
// the rule spec declares the attribute numeric.
func sizeOf(f Field) (float64, sizeKind, bool) {
	numericSpec := f.Spec.Has("numeric") || f.Spec.Has("integer")
	if n, ok := toFloat(f.Value, numericSpec); ok {
		return n, sizeNumeric, true
	}
	if s, ok := f.Value.(string); ok {
		return float64(utf8.RuneCountInString(s)), sizeString, true
	}
	if isList(f.Value) || isMap(f.Value) {
		return float64(reflect.ValueOf(f.Value).Len()), sizeArray, true
	}
	return 0, "", false
}

func parseDate(v any, layouts ...string) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return *d, !d.IsZero()
	case string:
		if len(layouts) == 0 {
			layouts = dateLayouts
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, strings.TrimSpace(d)); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
