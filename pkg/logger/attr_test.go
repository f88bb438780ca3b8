package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dto/pkg/logger"
	"github.com/dmitrymomot/dto/pkg/validator"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRecordAndSource(t *testing.T) {
	assert.Equal(t, slog.String("record", "Signup"), logger.Record("Signup"))
	assert.Equal(t, slog.String("source", "data.json#2"), logger.Source("data.json#2"))
}

func TestFailures(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "field is required"},
		{Field: "name", Message: "must be a string"},
		{Field: "email", Message: "must be a valid email address"},
	}

	attr := logger.Failures(errs)
	require.Equal(t, "failures", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "email", g[0].Key)
	assert.Equal(t, []string{"field is required", "must be a valid email address"}, g[0].Value.Any())
	assert.Equal(t, "name", g[1].Key)

	assert.True(t, logger.Failures(nil).Equal(slog.Attr{}))
}
