package client

// Params is the canonical location for query and path parameters.
type Params struct {
	Query map[string]any
	Path  map[string]any
}

// RequestOptions is the caller-supplied payload for one operation call.
type RequestOptions struct {
	Params *Params

	// Query is a deprecated alias for Params.Query. It is folded into
	// Params.Query during normalization; if Params.Query is already set the
	// alias value is discarded.
	//
	// Deprecated: set Params.Query instead.
	Query map[string]any

	Body    any
	Headers map[string]string
}

// normalizeOptions reconciles the two accepted call shapes into one
// canonical shape. Caller-owned structs and maps are never mutated; the
// output never carries the legacy Query field and holds query data solely
// under Params.Query.
func (c *Client) normalizeOptions(opts *RequestOptions) *RequestOptions {
	if opts == nil {
		return nil
	}

	out := *opts
	if opts.Params != nil {
		params := *opts.Params
		out.Params = &params
	}

	if opts.Query != nil {
		c.warn("RequestOptions.Query is deprecated; use Params.Query instead")
		if out.Params == nil {
			out.Params = &Params{}
		}
		if out.Params.Query == nil {
			out.Params.Query = opts.Query
		}
		out.Query = nil
	}
	return &out
}
