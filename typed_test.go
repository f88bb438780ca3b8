package dto_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dto"
)

func TestGetInt(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int64
		ok       bool
	}{
		{name: "int", value: 5, expected: 5, ok: true},
		{name: "int8", value: int8(-3), expected: -3, ok: true},
		{name: "uint32", value: uint32(9), expected: 9, ok: true},
		{name: "whole float", value: 12.0, expected: 12, ok: true},
		{name: "json number", value: json.Number("42"), expected: 42, ok: true},
		{name: "fractional float", value: 1.5},
		{name: "fractional json number", value: json.Number("1.5")},
		{name: "overflowing uint64", value: uint64(math.MaxUint64)},
		{name: "string", value: "5"},
		{name: "nil", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec dto.Record
			rec.Set("n", tt.value)

			got, err := rec.GetInt("n")
			if !tt.ok {
				assert.ErrorIs(t, err, dto.ErrAttributeType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetFloat(t *testing.T) {
	var rec dto.Record
	rec.Set("f", float32(0.5)).Set("i", 3).Set("n", json.Number("2.25")).Set("s", "x")

	f, err := rec.GetFloat("f")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f, 1e-9)

	f, err = rec.GetFloat("i")
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	f, err = rec.GetFloat("n")
	require.NoError(t, err)
	assert.Equal(t, 2.25, f)

	_, err = rec.GetFloat("s")
	assert.ErrorIs(t, err, dto.ErrAttributeType)

	_, err = rec.GetFloat("missing")
	assert.ErrorIs(t, err, dto.ErrAttributeNotFound)
}

func TestGetStringAndBool(t *testing.T) {
	var rec dto.Record
	rec.Set("s", "x").Set("b", true)

	s, err := rec.GetString("s")
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	b, err := rec.GetBool("b")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = rec.GetString("b")
	var typeErr *dto.AttributeTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "string", typeErr.Want)
	assert.Equal(t, `attribute "b" is bool, not string`, err.Error())

	_, err = rec.GetBool("s")
	assert.ErrorIs(t, err, dto.ErrAttributeType)
}

func TestValue(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ex := NewExampleData("Hello", 1)
	ex.Set("at", at).Set("tags", []string{"a"})

	got, err := dto.Value[time.Time](ex, "at")
	require.NoError(t, err)
	assert.Equal(t, at, got)

	tags, err := dto.Value[[]string](ex, "tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tags)

	_, err = dto.Value[int](ex, "first")
	assert.ErrorIs(t, err, dto.ErrAttributeType)

	_, err = dto.Value[int](ex, "missing")
	assert.ErrorIs(t, err, dto.ErrAttributeNotFound)

	assert.Equal(t, "Hello", dto.ValueOr(ex, "first", "default"))
	assert.Equal(t, "default", dto.ValueOr(ex, "missing", "default"))
	assert.Equal(t, 7, dto.ValueOr(ex, "first", 7))
}
