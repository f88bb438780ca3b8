package dto

import (
	"encoding/json"
	"math"
	"reflect"
)

// Value returns the attribute asserted to T.
//
//	first, err := dto.Value[string](ex, "first")
func Value[T any](m Model, name string) (T, error) {
	var zero T
	v, err := m.record().GetRequired(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &AttributeTypeError{Name: name, Want: reflect.TypeFor[T]().String(), Got: v}
	}
	return t, nil
}

// ValueOr returns the attribute asserted to T, or def when it is unset or of
// another type.
func ValueOr[T any](m Model, name string, def T) T {
	if v, err := Value[T](m, name); err == nil {
		return v
	}
	return def
}

// GetString returns a string attribute.
func (r *Record) GetString(name string) (string, error) {
	return Value[string](r, name)
}

// GetBool returns a bool attribute.
func (r *Record) GetBool(name string) (bool, error) {
	return Value[bool](r, name)
}

// GetInt returns an integer attribute. Any Go integer type, whole floats and
// integral json.Number values are accepted if they fit into int64.
func (r *Record) GetInt(name string) (int64, error) {
	v, err := r.GetRequired(name)
	if err != nil {
		return 0, err
	}
	if i, ok := toInt64(v); ok {
		return i, nil
	}
	return 0, &AttributeTypeError{Name: name, Want: "int64", Got: v}
}

// GetFloat returns a numeric attribute as float64.
func (r *Record) GetFloat(name string) (float64, error) {
	v, err := r.GetRequired(name)
	if err != nil {
		return 0, err
	}
	if f, ok := toFloat64(v); ok {
		return f, nil
	}
	return 0, &AttributeTypeError{Name: name, Want: "float64", Got: v}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	if u, ok := v.(uint64); ok {
		return float64(u), true
	}
	return 0, false
}
