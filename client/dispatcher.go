package client

import (
	"context"
	"strings"

	"github.com/ranwhenparked/trustap-sdk/internal/pathtpl"
	"github.com/ranwhenparked/trustap-sdk/transport"
)

// OperationFunc invokes one catalog operation. Non-success HTTP statuses
// surface inside the Result; returned errors are transport, middleware, or
// path-template failures.
type OperationFunc func(ctx context.Context, opts *RequestOptions) (*transport.Result, error)

// Operation resolves an operation id to its bound handler. Unknown ids
// yield nil, never an error. A handler is built on first access and cached;
// the check-and-set under the mutex keeps the build at once per id even
// under concurrent first access.
func (c *Client) Operation(id string) OperationFunc {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fn, ok := c.handlers[id]; ok {
		return fn
	}

	mapping, ok := c.cat.Lookup(id)
	if !ok {
		return nil
	}

	tpl := pathtpl.Compile(joinPath(c.basePath, mapping.Path))
	method := string(mapping.Method)

	fn := func(ctx context.Context, opts *RequestOptions) (*transport.Result, error) {
		opts = c.normalizeOptions(opts)

		var pathParams map[string]any
		var topts *transport.Options
		if opts != nil {
			if opts.Params != nil {
				pathParams = opts.Params.Path
			}
			topts = transportOptions(opts)
		}

		path, err := tpl.Apply(pathParams)
		if err != nil {
			return nil, err
		}
		return c.tr.Do(ctx, method, path, topts)
	}
	c.handlers[id] = fn
	return fn
}

// PathClient is the path-based calling convention: one literal path
// template, callable per verb.
type PathClient struct {
	c    *Client
	path string
}

// Path returns a verb set bound to a literal path template, joined with the
// client's base path.
func (c *Client) Path(path string) PathClient {
	return PathClient{c: c, path: path}
}

func (p PathClient) Get(ctx context.Context, opts *RequestOptions) (*transport.Result, error) {
	return p.do(ctx, "GET", opts)
}

func (p PathClient) Post(ctx context.Context, opts *RequestOptions) (*transport.Result, error) {
	return p.do(ctx, "POST", opts)
}

func (p PathClient) Put(ctx context.Context, opts *RequestOptions) (*transport.Result, error) {
	return p.do(ctx, "PUT", opts)
}

func (p PathClient) Patch(ctx context.Context, opts *RequestOptions) (*transport.Result, error) {
	return p.do(ctx, "PATCH", opts)
}

func (p PathClient) Delete(ctx context.Context, opts *RequestOptions) (*transport.Result, error) {
	return p.do(ctx, "DELETE", opts)
}

func (p PathClient) Head(ctx context.Context, opts *RequestOptions) (*transport.Result, error) {
	return p.do(ctx, "HEAD", opts)
}

func (p PathClient) Options(ctx context.Context, opts *RequestOptions) (*transport.Result, error) {
	return p.do(ctx, "OPTIONS", opts)
}

func (p PathClient) do(ctx context.Context, method string, opts *RequestOptions) (*transport.Result, error) {
	opts = p.c.normalizeOptions(opts)

	var pathParams map[string]any
	var topts *transport.Options
	if opts != nil {
		if opts.Params != nil {
			pathParams = opts.Params.Path
		}
		topts = transportOptions(opts)
	}

	path, err := pathtpl.Compile(joinPath(p.c.basePath, p.path)).Apply(pathParams)
	if err != nil {
		return nil, err
	}
	return p.c.tr.Do(ctx, method, path, topts)
}

func transportOptions(opts *RequestOptions) *transport.Options {
	out := &transport.Options{Body: opts.Body, Headers: opts.Headers}
	if opts.Params != nil {
		out.Query = opts.Params.Query
	}
	return out
}

// joinPath joins the base path with an endpoint path, collapsing duplicate
// slashes and preserving the leading slash.
func joinPath(base, path string) string {
	joined := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	for strings.Contains(joined, "//") {
		joined = strings.ReplaceAll(joined, "//", "/")
	}
	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	return joined
}
