package binder

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/dto"
)

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies. Keys with one value are stored as string, repeated keys as
// []string. Uploaded files are stored as *multipart.FileHeader, or
// []*multipart.FileHeader for several files under one key, with sanitized
// file names.
func Form(opts ...Option) Binder {
	o := newOptions(DefaultMaxMemory, opts)

	return func(r *http.Request, m dto.Model) error {
		mt, params, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w, expected a form", err)
		}

		var files map[string][]*multipart.FileHeader
		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(o.maxSize); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			files = r.MultipartForm.File
		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}

		o.fill(m, valuesToMap(r.PostForm))

		fileAttrs := make(map[string]any, len(files))
		for name, headers := range files {
			for _, fh := range headers {
				fh.Filename = sanitizeFilename(fh.Filename)
			}
			if len(headers) == 1 {
				fileAttrs[name] = headers[0]
			} else if len(headers) > 1 {
				fileAttrs[name] = headers
			}
		}
		dto.Base(m).Fill(fileAttrs)
		return nil
	}
}

// Query binds URL query parameters with the same single/multi value rules
// as Form.
func Query(opts ...Option) Binder {
	o := newOptions(0, opts)

	return func(r *http.Request, m dto.Model) error {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
		}
		o.fill(m, valuesToMap(values))
		return nil
	}
}

// Path binds named wildcards of the standard library mux ("/users/{id}").
// Names without a value are skipped.
func Path(names ...string) Binder {
	return func(r *http.Request, m dto.Model) error {
		data := make(map[string]any, len(names))
		for _, name := range names {
			if v := r.PathValue(name); v != "" {
				data[name] = v
			}
		}
		dto.Base(m).Fill(data)
		return nil
	}
}

func valuesToMap(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			out[key] = vs[0]
		default:
			out[key] = append([]string(nil), vs...)
		}
	}
	return out
}

// sanitizeFilename strips directories and null bytes from an uploaded file
// name.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
