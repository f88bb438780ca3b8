package binder

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/dmitrymomot/dto"
	"github.com/dmitrymomot/dto/pkg/sanitizer"
)

const (
	// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
	DefaultMaxJSONSize = 1 << 20
	// DefaultMaxMemory is the default memory limit for multipart forms (10MB).
	DefaultMaxMemory = 10 << 20
)

// Binder fills a record from one part of a request.
type Binder func(r *http.Request, m dto.Model) error

// Option configures a Binder.
type Option func(*options)

type options struct {
	maxSize  int64
	sanitize func(map[string]any) map[string]any
}

func newOptions(defaultSize int64, opts []Option) *options {
	o := &options{maxSize: defaultSize, sanitize: sanitizer.TrimStrings}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMaxSize limits the JSON body size, or the multipart memory.
func WithMaxSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithSanitizer replaces the input sanitizer, sanitizer.TrimStrings by
// default. A nil func keeps input as sent.
func WithSanitizer(fn func(map[string]any) map[string]any) Option {
	return func(o *options) {
		o.sanitize = fn
	}
}

func (o *options) fill(m dto.Model, data map[string]any) {
	if o.sanitize != nil {
		data = o.sanitize(data)
	}
	dto.Base(m).Fill(data)
}

// Bind runs binders in order; later binders overwrite earlier attributes.
//
//	err := binder.Bind(r, signup, binder.Query(), binder.JSON())
func Bind(r *http.Request, m dto.Model, binders ...Binder) error {
	for _, b := range binders {
		if err := b(r, m); err != nil {
			return err
		}
	}
	return nil
}

// New creates a record of type T and binds the request into it.
//
//	signup, err := binder.New[*Signup](r, binder.JSON())
//	if err != nil { ... }
//	if !signup.Validate() { ... }
func New[T dto.Model](r *http.Request, binders ...Binder) (T, error) {
	m := dto.New[T]()
	if err := Bind(r, m, binders...); err != nil {
		var zero T
		return zero, err
	}
	return m, nil
}

func mediaType(r *http.Request) (string, map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", nil, ErrMissingContentType
	}
	mt, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mt, params, nil
}
