// Package backend is the REST boundary: one configured HTTP client plus a
// typed service per entity. The backend owns storage and every invariant;
// this side holds transient copies only.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gourbalissakh/scolaris/core"
)

// Unwrap names the envelope depth of an endpoint. The two depths both exist
// server-side; each service fixes the right one per call instead of
// guessing at call sites.
type Unwrap int

const (
	// UnwrapNone decodes the body as-is.
	UnwrapNone Unwrap = iota
	// UnwrapData decodes {"data": T}.
	UnwrapData
	// UnwrapDataData decodes {"data": {"data": T}}, the paginated-list shape.
	UnwrapDataData
)

// TokenSource yields the bearer token to attach, or "" for anonymous calls.
type TokenSource interface {
	Token() string
}

type Client struct {
	base    string
	http    *http.Client
	tokens  TokenSource
	log     core.Logger
	expired func() // invoked on any 401
}

type Option func(*Client)

// WithTokenSource attaches bearer tokens from src to every request.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) { c.tokens = src }
}

// WithLogger routes 403/404/5xx and transport failures to log.
func WithLogger(log core.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithAuthExpiredHook registers fn to run whenever the backend answers 401,
// whichever call triggered it.
func WithAuthExpiredHook(fn func()) Option {
	return func(c *Client) { c.expired = fn }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, unwrap Unwrap, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, unwrap, out)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, unwrap Unwrap, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, unwrap, out)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, unwrap Unwrap, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, unwrap, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, UnwrapNone, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, unwrap Unwrap, out interface{}) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "backend: encoding request body")
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return errors.Wrap(err, "backend: building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(method, path, err)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(method, path, err)
	}

	if resp.StatusCode >= 400 {
		return c.statusError(method, path, resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	return decode(data, unwrap, out)
}

// transportError classifies a failure that never produced a response.
func (c *Client) transportError(method, path string, err error) error {
	kind := core.KindNetwork
	if isTimeout(err) {
		kind = core.KindTimeout
	}
	c.warn("%s %s: %s failure: %v", method, path, kind, err)
	return core.NewAPIError(kind, 0, fmt.Sprintf("the server could not be reached (%s)", kind))
}

func isTimeout(err error) bool {
	if errors.Cause(err) == context.DeadlineExceeded {
		return true
	}
	type timeouter interface{ Timeout() bool }
	var t timeouter
	if errors.As(err, &t) {
		return t.Timeout()
	}
	return false
}

// errorEnvelope is the server's error body; 422 carries per-field messages.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) statusError(method, path string, status int, body []byte) error {
	var env errorEnvelope
	_ = json.Unmarshal(body, &env)
	if env.Message == "" {
		env.Message = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized:
		if c.expired != nil {
			c.expired()
		}
		return core.NewAPIError(core.KindAuth, status, "session expired, please log in again")
	case status == http.StatusForbidden:
		c.warn("%s %s: forbidden: %s", method, path, env.Message)
		return core.NewAPIError(core.KindForbidden, status, env.Message)
	case status == http.StatusNotFound:
		c.warn("%s %s: not found", method, path)
		return core.NewAPIError(core.KindNotFound, status, env.Message)
	case status == http.StatusUnprocessableEntity:
		var flds []core.FieldError
		for field, msgs := range env.Errors {
			for _, msg := range msgs {
				flds = append(flds, core.FieldError{Field: field, Error: msg})
			}
		}
		return core.NewAPIError(core.KindValidation, status, env.Message, flds...)
	case status >= 500:
		c.error("%s %s: server error %d: %s", method, path, status, env.Message)
		return core.NewAPIError(core.KindServer, status, "the server had a problem, try again later")
	}
	return core.NewAPIError(core.KindUnknown, status, env.Message)
}

// decode unwraps the configured envelope depth into out. A missing or null
// "data" field is not an error: out is simply left at its zero value, so a
// list endpoint degrades to an empty slice.
func decode(data []byte, unwrap Unwrap, out interface{}) error {
	for depth := int(unwrap); depth > 0; depth-- {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(data, &env); err != nil {
			return errors.Wrap(err, "backend: decoding response envelope")
		}
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return nil
		}
		data = env.Data
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "backend: decoding response body")
	}
	return nil
}

func (c *Client) warn(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Warn(fmt.Sprintf(format, args...))
	}
}

func (c *Client) error(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Error(fmt.Sprintf(format, args...))
	}
}
