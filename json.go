package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// FromJSON decodes a JSON object into a new record of type T. Numbers become
// int64 when integral, float64 otherwise.
func FromJSON[T Model](data []byte, opts ...Option) (T, error) {
	attrs, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		var zero T
		return zero, err
	}
	return FromMap[T](attrs, opts...), nil
}

// DecodeJSON reads a single JSON object from r. Trailing data is an error.
func DecodeJSON(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var attrs map[string]any
	if err := dec.Decode(&attrs); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	if attrs == nil {
		return nil, fmt.Errorf("%w: null", ErrInvalidJSON)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after object", ErrInvalidJSON)
	}

	for k, v := range attrs {
		attrs[k] = normalizeJSON(v)
	}
	return attrs, nil
}

func normalizeJSON(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		for i := range val {
			val[i] = normalizeJSON(val[i])
		}
		return val
	case map[string]any:
		for k := range val {
			val[k] = normalizeJSON(val[k])
		}
		return val
	}
	return v
}
