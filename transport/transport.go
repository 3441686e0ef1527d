// Package transport defines the minimal HTTP transport contract the SDK
// dispatches through, and provides a net/http based implementation.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Options carries the per-request payload. Query values may be strings,
// bools, numbers, fmt.Stringers, or slices of those.
type Options struct {
	Query   map[string]any
	Body    any
	Headers map[string]string
}

// APIError is a non-success HTTP outcome. It is carried inside Result rather
// than returned as a Go error: Go errors are reserved for transport and
// middleware failures.
type APIError struct {
	Status int
	Body   json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d", e.Status)
}

// Result is the outcome of one request. Exactly one of Data and Error is
// populated; Response always carries the drained *http.Response.
type Result struct {
	Data     json.RawMessage
	Error    *APIError
	Response *http.Response
}

// Middleware hooks run around each request. Either hook may be nil. A hook
// must return a non-nil replacement; a returned error aborts the in-flight
// call and propagates to the caller unchanged.
type Middleware struct {
	OnRequest  func(req *http.Request) (*http.Request, error)
	OnResponse func(req *http.Request, res *http.Response) (*http.Response, error)
}

// Transport executes the request/response cycle and applies middleware.
type Transport interface {
	Use(mw Middleware)
	Do(ctx context.Context, method, path string, opts *Options) (*Result, error)
	Get(ctx context.Context, path string, opts *Options) (*Result, error)
	Post(ctx context.Context, path string, opts *Options) (*Result, error)
	Put(ctx context.Context, path string, opts *Options) (*Result, error)
	Patch(ctx context.Context, path string, opts *Options) (*Result, error)
	Delete(ctx context.Context, path string, opts *Options) (*Result, error)
	Head(ctx context.Context, path string, opts *Options) (*Result, error)
	Options(ctx context.Context, path string, opts *Options) (*Result, error)
}

var supportedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// IsSupportedMethod reports whether the transport contract covers method.
func IsSupportedMethod(method string) bool {
	return supportedMethods[method]
}
