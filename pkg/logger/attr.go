package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/dto/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Record records a record type name under the key "record".
func Record(typeName string) slog.Attr {
	return slog.String("record", typeName)
}

// Source records an input location, such as a file name, under "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Failures groups validation messages by field under "failures".
// Empty collections produce an empty Attr.
func Failures(errs validator.ValidationErrors) slog.Attr {
	if errs.IsEmpty() {
		return slog.Attr{}
	}
	fields := errs.Fields()
	as := make([]slog.Attr, 0, len(fields))
	for _, field := range fields {
		as = append(as, slog.Any(field, errs.Get(field)))
	}
	return slog.Attr{Key: "failures", Value: slog.GroupValue(as...)}
}
