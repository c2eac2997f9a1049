package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/core/academic"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, opts...), srv
}

func TestClientHeaders(t *testing.T) {
	var got http.Header
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":{}}`))
	}), WithTokenSource(staticTokens("tok-123")))

	var out struct{}
	err := c.Get(context.Background(), "/filieres/1", UnwrapData, &out)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestClientNoTokenNoHeader(t *testing.T) {
	var got http.Header
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":{}}`))
	}), WithTokenSource(staticTokens("")))

	var out struct{}
	assert.NoError(t, c.Get(context.Background(), "/filieres/1", UnwrapData, &out))
	assert.Empty(t, got.Get("Authorization"))
}

func TestClientUnwrapDepths(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		unwrap Unwrap
		want   int // decoded list length
	}{
		{name: "single envelope", body: `{"data":[{"id":1},{"id":2}]}`, unwrap: UnwrapData, want: 2},
		{name: "paginated envelope", body: `{"data":{"data":[{"id":1}]}}`, unwrap: UnwrapDataData, want: 1},
		{name: "empty list", body: `{"data":{"data":[]}}`, unwrap: UnwrapDataData, want: 0},
		{name: "missing data falls back to empty", body: `{}`, unwrap: UnwrapDataData, want: 0},
		{name: "null data falls back to empty", body: `{"data":null}`, unwrap: UnwrapDataData, want: 0},
		{name: "missing inner data falls back to empty", body: `{"data":{}}`, unwrap: UnwrapDataData, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			out := make([]academic.Filiere, 0)
			err := c.Get(context.Background(), "/filieres", tt.unwrap, &out)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, len(out))
		})
	}
}

func TestClientStatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind core.ErrorKind
	}{
		{name: "forbidden", status: 403, body: `{"message":"permission denied"}`, wantKind: core.KindForbidden},
		{name: "not found", status: 404, body: `{"message":"not found"}`, wantKind: core.KindNotFound},
		{name: "server error", status: 500, body: ``, wantKind: core.KindServer},
		{name: "validation", status: 422, body: `{"message":"invalid"}`, wantKind: core.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			err := c.Get(context.Background(), "/x", UnwrapData, &struct{}{})
			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, core.ErrKind(err))
		})
	}
}

func TestClient422FieldErrors(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid","errors":{"code":["already taken","too short"]}}`))
	}))
	err := c.Post(context.Background(), "/filieres", map[string]string{}, UnwrapData, &struct{}{})
	apiErr, ok := errors.Cause(err).(*core.APIError)
	assert.True(t, ok)
	assert.Equal(t, core.KindValidation, apiErr.Kind)
	assert.Equal(t, 2, len(apiErr.Fields))
	assert.Equal(t, "code", apiErr.Fields[0].Field)
}

func TestClient401InvokesExpiredHook(t *testing.T) {
	var cleared bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), WithAuthExpiredHook(func() { cleared = true }))

	err := c.Get(context.Background(), "/notes", UnwrapDataData, &[]academic.Note{})
	assert.True(t, core.IsAuthError(err))
	assert.True(t, cleared)
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, 20*time.Millisecond)

	err := c.Get(context.Background(), "/classes", UnwrapDataData, &[]academic.Classe{})
	assert.Error(t, err)
	assert.True(t, core.IsTransientError(err))
}

func TestClientNetworkFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	err := c.Get(context.Background(), "/classes", UnwrapDataData, &[]academic.Classe{})
	assert.Error(t, err)
	assert.True(t, core.IsTransientError(err))
}
