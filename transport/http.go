package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// HTTP is the default Transport over net/http.
type HTTP struct {
	baseURL    string
	client     *http.Client
	middleware []Middleware
}

// Option configures the HTTP transport.
type Option func(*HTTP)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTP) {
		t.client = c
	}
}

// New creates an HTTP transport rooted at baseURL.
func New(baseURL string, opts ...Option) *HTTP {
	t := &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Use appends middleware. OnRequest hooks run in registration order,
// OnResponse hooks in reverse.
func (t *HTTP) Use(mw Middleware) {
	t.middleware = append(t.middleware, mw)
}

func (t *HTTP) Get(ctx context.Context, path string, opts *Options) (*Result, error) {
	return t.Do(ctx, http.MethodGet, path, opts)
}

func (t *HTTP) Post(ctx context.Context, path string, opts *Options) (*Result, error) {
	return t.Do(ctx, http.MethodPost, path, opts)
}

func (t *HTTP) Put(ctx context.Context, path string, opts *Options) (*Result, error) {
	return t.Do(ctx, http.MethodPut, path, opts)
}

func (t *HTTP) Patch(ctx context.Context, path string, opts *Options) (*Result, error) {
	return t.Do(ctx, http.MethodPatch, path, opts)
}

func (t *HTTP) Delete(ctx context.Context, path string, opts *Options) (*Result, error) {
	return t.Do(ctx, http.MethodDelete, path, opts)
}

func (t *HTTP) Head(ctx context.Context, path string, opts *Options) (*Result, error) {
	return t.Do(ctx, http.MethodHead, path, opts)
}

func (t *HTTP) Options(ctx context.Context, path string, opts *Options) (*Result, error) {
	return t.Do(ctx, http.MethodOptions, path, opts)
}

// Do builds the request, runs it through the middleware chain, and shapes
// the outcome. Non-2xx statuses populate Result.Error; Go errors are
// reserved for build, middleware, and network failures.
func (t *HTTP) Do(ctx context.Context, method, path string, opts *Options) (*Result, error) {
	if !IsSupportedMethod(method) {
		return nil, fmt.Errorf("unsupported http method %q", method)
	}

	req, err := t.buildRequest(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}

	for _, mw := range t.middleware {
		if mw.OnRequest == nil {
			continue
		}
		req, err = mw.OnRequest(req)
		if err != nil {
			return nil, err
		}
		if req == nil {
			return nil, fmt.Errorf("request middleware returned nil request")
		}
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}

	for i := len(t.middleware) - 1; i >= 0; i-- {
		mw := t.middleware[i]
		if mw.OnResponse == nil {
			continue
		}
		res, err = mw.OnResponse(req, res)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return nil, fmt.Errorf("response middleware returned nil response")
		}
	}

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	result := &Result{Response: res}
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		result.Data = body
	} else {
		result.Error = &APIError{Status: res.StatusCode, Body: body}
	}
	return result, nil
}

func (t *HTTP) buildRequest(ctx context.Context, method, path string, opts *Options) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := t.baseURL + path

	var body io.Reader
	contentType := ""
	if opts != nil && opts.Body != nil {
		switch b := opts.Body.(type) {
		case []byte:
			body = bytes.NewReader(b)
		case string:
			body = strings.NewReader(b)
		case io.Reader:
			body = b
		default:
			encoded, err := json.Marshal(b)
			if err != nil {
				return nil, fmt.Errorf("encoding request body: %w", err)
			}
			body = bytes.NewReader(encoded)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	if opts != nil && len(opts.Query) > 0 {
		q := req.URL.Query()
		if err := encodeQuery(q, opts.Query); err != nil {
			return nil, err
		}
		req.URL.RawQuery = q.Encode()
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if opts != nil {
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
	}
	return req, nil
}

func encodeQuery(q url.Values, params map[string]any) error {
	for key, value := range params {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				q.Add(key, item)
			}
		case []any:
			for _, item := range v {
				s, err := queryValue(key, item)
				if err != nil {
					return err
				}
				q.Add(key, s)
			}
		default:
			s, err := queryValue(key, value)
			if err != nil {
				return err
			}
			q.Add(key, s)
		}
	}
	return nil
}

func queryValue(key string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("query parameter %q has unsupported type %T", key, v)
	}
}
