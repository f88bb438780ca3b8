package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/dto"
)

// JSON binds a JSON object body. The body must be application/json and at
// most DefaultMaxJSONSize bytes. Integral numbers become int64, other
// numbers float64, strings are trimmed unless WithSanitizer says otherwise.
func JSON(opts ...Option) Binder {
	o := newOptions(DefaultMaxJSONSize, opts)

	return func(r *http.Request, m dto.Model) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		mt, _, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w, expected application/json", err)
		}
		if mt != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, o.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > o.maxSize {
			return fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, o.maxSize)
		}
		if len(body) == 0 {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		data, err := dto.DecodeJSON(bytes.NewReader(body))
		if err != nil {
			return errors.Join(ErrFailedToParseJSON, err)
		}

		o.fill(m, data)
		return nil
	}
}
