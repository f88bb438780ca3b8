package binder_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dto"
	"github.com/dmitrymomot/dto/pkg/binder"
	"github.com/dmitrymomot/dto/pkg/validator"
)

type CreateUser struct {
	dto.Record
}

func (*CreateUser) DefaultRules() map[string]validator.RuleSpec {
	return validator.Rules(map[string]string{
		"name":  "required|string|min:2",
		"email": "required|email",
		"age":   "nullable|integer|gte:18",
	})
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	return r
}

func TestJSON(t *testing.T) {
	r := jsonRequest(`{"name": "  Ann ", "email": "ann@example.com", "age": 30, "score": 1.5, "tags": [" a "]}`)

	u, err := binder.New[*CreateUser](r, binder.JSON())
	require.NoError(t, err)

	assert.Equal(t, "Ann", u.Get("name"))
	assert.Equal(t, int64(30), u.Get("age"))
	assert.Equal(t, 1.5, u.Get("score"))
	assert.Equal(t, []any{"a"}, u.Get("tags"))
	assert.True(t, u.Validate())
}

func TestJSON_WithoutSanitizer(t *testing.T) {
	rec := dto.New[*dto.Record]()
	err := binder.JSON(binder.WithSanitizer(nil))(jsonRequest(`{"password": " secret "}`), rec)
	require.NoError(t, err)
	assert.Equal(t, " secret ", rec.Get("password"))
}

func TestJSON_Errors(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		request func() *http.Request
		binder  binder.Binder
		err     error
	}{
		{
			name: "missing content type",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
			},
			err: binder.ErrMissingContentType,
		},
		{
			name: "wrong content type",
			request: func() *http.Request {
				r := jsonRequest(`{}`)
				r.Header.Set("Content-Type", "text/plain")
				return r
			},
			err: binder.ErrUnsupportedMediaType,
		},
		{
			name:    "empty body",
			request: func() *http.Request { return jsonRequest(``) },
			err:     binder.ErrFailedToParseJSON,
		},
		{
			name:    "malformed",
			request: func() *http.Request { return jsonRequest(`{"name":`) },
			err:     binder.ErrFailedToParseJSON,
		},
		{
			name:    "not an object",
			request: func() *http.Request { return jsonRequest(`["a"]`) },
			err:     dto.ErrInvalidJSON,
		},
		{
			name:    "trailing data",
			request: func() *http.Request { return jsonRequest(`{"a":1} {"b":2}`) },
			err:     binder.ErrFailedToParseJSON,
		},
		{
			name:    "too large",
			request: func() *http.Request { return jsonRequest(`{"name":"` + strings.Repeat("x", 64) + `"}`) },
			binder:  binder.JSON(binder.WithMaxSize(32)),
			err:     binder.ErrRequestTooLarge,
		},
		{
			name:    "cancelled",
			request: func() *http.Request { return jsonRequest(`{}`).WithContext(cancelled) },
			err:     binder.ErrFailedToParseJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.binder
			if b == nil {
				b = binder.JSON()
			}
			rec := dto.New[*dto.Record]()
			err := b(tt.request(), rec)
			assert.ErrorIs(t, err, tt.err)
			assert.Zero(t, rec.Len())
		})
	}
}

func TestForm_URLEncoded(t *testing.T) {
	form := url.Values{"name": {" Ann "}, "roles": {"admin", "user"}}
	r := httptest.NewRequest(http.MethodPost, "/users?ignored=1", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := dto.New[*dto.Record]()
	require.NoError(t, binder.Form()(r, rec))

	assert.Equal(t, "Ann", rec.Get("name"))
	assert.Equal(t, []string{"admin", "user"}, rec.Get("roles"))
	assert.False(t, rec.Has("ignored"), "query parameters are not form values")
}

func TestForm_Multipart(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("title", "Report"))
	fw, err := w.CreateFormFile("avatar", "../../etc/passwd")
	require.NoError(t, err)
	_, err = fw.Write([]byte("data"))
	require.NoError(t, err)
	for _, name := range []string{"a.png", "b.png"} {
		fw, err := w.CreateFormFile("gallery", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r := httptest.NewRequest(http.MethodPost, "/upload", &body)
	r.Header.Set("Content-Type", w.FormDataContentType())

	rec := dto.New[*dto.Record]()
	require.NoError(t, binder.Form()(r, rec))

	assert.Equal(t, "Report", rec.Get("title"))

	avatar, err := dto.Value[*multipart.FileHeader](rec, "avatar")
	require.NoError(t, err)
	assert.Equal(t, "passwd", avatar.Filename)

	gallery, err := dto.Value[[]*multipart.FileHeader](rec, "gallery")
	require.NoError(t, err)
	assert.Len(t, gallery, 2)
}

func TestForm_Errors(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	r.Header.Set("Content-Type", "application/json")
	assert.ErrorIs(t, binder.Form()(r, dto.New[*dto.Record]()), binder.ErrUnsupportedMediaType)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	r.Header.Set("Content-Type", "multipart/form-data")
	assert.ErrorIs(t, binder.Form()(r, dto.New[*dto.Record]()), binder.ErrFailedToParseForm)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	assert.ErrorIs(t, binder.Form()(r, dto.New[*dto.Record]()), binder.ErrMissingContentType)
}

func TestQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/users?page=2&sort=name&sort=-age&q=+hi+", nil)

	rec := dto.New[*dto.Record]()
	require.NoError(t, binder.Query()(r, rec))
	assert.Equal(t, "2", rec.Get("page"))
	assert.Equal(t, []string{"name", "-age"}, rec.Get("sort"))
	assert.Equal(t, "hi", rec.Get("q"))

	r = httptest.NewRequest(http.MethodGet, "/users", nil)
	r.URL.RawQuery = "a=%zz"
	assert.ErrorIs(t, binder.Query()(r, dto.New[*dto.Record]()), binder.ErrFailedToParseQuery)
}

func TestBind(t *testing.T) {
	mux := http.NewServeMux()
	var got *CreateUser
	var bindErr error
	mux.HandleFunc("POST /orgs/{org}/users", func(w http.ResponseWriter, r *http.Request) {
		got, bindErr = binder.New[*CreateUser](r, binder.Query(), binder.Path("org", "missing"), binder.JSON())
	})

	r := jsonRequest(`{"name": "Ann", "email": "ann@example.com", "source": "body"}`)
	r.URL, _ = url.Parse("/orgs/acme/users?source=query&page=1")
	mux.ServeHTTP(httptest.NewRecorder(), r)

	require.NoError(t, bindErr)
	assert.Equal(t, "acme", got.Get("org"))
	assert.Equal(t, "body", got.Get("source"), "later binders win")
	assert.Equal(t, "1", got.Get("page"))
	assert.False(t, got.Has("missing"))
	assert.Equal(t, "CreateUser", got.TypeName())

	_, err := binder.New[*CreateUser](httptest.NewRequest(http.MethodPost, "/", nil), binder.JSON())
	assert.ErrorIs(t, err, binder.ErrMissingContentType)
}
