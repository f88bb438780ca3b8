package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dto"
)

func TestCall_RoundTrip(t *testing.T) {
	tests := []struct {
		setter    string
		getter    string
		attribute string
		value     any
	}{
		{setter: "setFirst", getter: "getFirst", attribute: "first", value: "Hello"},
		{setter: "setFirstName", getter: "getFirstName", attribute: "first_name", value: "Ann"},
		{setter: "setHTTPCode", getter: "getHTTPCode", attribute: "http_code", value: 200},
		{setter: "setUserID", getter: "getUserID", attribute: "user_id", value: int64(7)},
		{setter: "setNothing", getter: "getNothing", attribute: "nothing", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.setter, func(t *testing.T) {
			ex := dto.New[*ExampleData]()

			res, err := ex.Call(tt.setter, tt.value)
			require.NoError(t, err)
			assert.Same(t, &ex.Record, res)
			assert.True(t, ex.Has(tt.attribute))

			got, err := ex.Call(tt.getter)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestCall_Chaining(t *testing.T) {
	ex := dto.New[*ExampleData]()

	res, err := ex.Call("setFirst", "Hello")
	require.NoError(t, err)
	res, err = res.(*dto.Record).Call("setSecond", 123)
	require.NoError(t, err)

	assert.Same(t, &ex.Record, res)
	assert.Equal(t, "Hello", ex.Get("first"))
	assert.Equal(t, 123, ex.Get("second"))
	assert.True(t, ex.Validate())

	ex.MustCall("setFirst", "Hi")
	assert.Equal(t, "Hi", ex.MustCall("getFirst"))
}

func TestCall_LowerCaseSuffix(t *testing.T) {
	ex := NewExampleData("Hello", 1)

	v, err := ex.Call("getfirst")
	require.NoError(t, err)
	assert.Equal(t, "Hello", v)

	_, err = ex.Call("settings", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", ex.Get("tings"))
}

func TestCall_MethodNotFound(t *testing.T) {
	tests := []struct {
		method string
		args   []any
	}{
		{method: "helloWorld"},
		{method: "get"},
		{method: "set", args: []any{1}},
		{method: "get_first"},
		{method: "set-first", args: []any{1}},
		{method: "setFirst"},
		{method: "setFirst", args: []any{1, 2}},
		{method: "getFirst", args: []any{1}},
		{method: "GetFirst"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			ex := NewExampleData("Hello", 1)

			_, err := ex.Call(tt.method, tt.args...)
			require.ErrorIs(t, err, dto.ErrMethodNotFound)

			var notFound *dto.MethodNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, "ExampleData", notFound.Type)
			assert.Equal(t, tt.method, notFound.Method)
			assert.Contains(t, err.Error(), "ExampleData::"+tt.method)
		})
	}

	assert.Panics(t, func() { dto.New[*dto.Record]().MustCall("nope") })
}

func TestCall_MissingAttribute(t *testing.T) {
	ex := dto.New[*ExampleData]()

	_, err := ex.Call("getThird")
	assert.ErrorIs(t, err, dto.ErrAttributeNotFound)
	assert.NotErrorIs(t, err, dto.ErrMethodNotFound)
}

func TestCall_NameConverter(t *testing.T) {
	rec := dto.New[*dto.Record](dto.WithNameConverter(strings.ToLower))

	_, err := rec.Call("setFirstName", "Ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann", rec.Get("firstname"))
}
