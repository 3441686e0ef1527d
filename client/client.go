// Package client is the Trustap SDK core: a typed dispatcher from operation
// ids to HTTP requests, with per-endpoint authentication resolved from the
// catalog's declarative security table.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/ranwhenparked/trustap-sdk/catalog"
	"github.com/ranwhenparked/trustap-sdk/internal/security"
	"github.com/ranwhenparked/trustap-sdk/transport"
)

// AuthMode forces an authentication decision for a path, bypassing the
// security table.
type AuthMode string

const (
	AuthBasic  AuthMode = "basic"
	AuthOAuth2 AuthMode = "oauth2"
	AuthAuto   AuthMode = "auto"
)

// DefaultBasePath is used when neither an explicit base path nor one
// inferred from APIURL is available.
const DefaultBasePath = "/api/v1"

// BasicAuth holds the partner API credentials. Password may be empty.
type BasicAuth struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// Config holds construction options for a client.
type Config struct {
	// APIURL is parsed as a URL when possible, splitting the host (transport
	// base) from an inferred base path. On parse failure the whole string is
	// used as the base URL verbatim.
	APIURL string `koanf:"api_url"`

	// BasePath overrides the path prefix inferred from APIURL.
	BasePath string `koanf:"base_path"`

	BasicAuth *BasicAuth `koanf:"basic_auth"`

	// AuthOverrides force an auth decision per exact path, consulted before
	// the security table.
	AuthOverrides map[string]AuthMode `koanf:"auth_overrides"`

	// AccessToken supplies a bearer token per request. Errors propagate to
	// the caller as request failures; an empty token attaches no header.
	AccessToken func(ctx context.Context) (string, error)

	// Warn receives advisory messages (deprecation notices). Defaults to
	// log/slog's default logger.
	Warn func(msg string)

	// Transport replaces the default net/http transport. Catalog replaces
	// the bundled operation catalog.
	Transport transport.Transport
	Catalog   *catalog.Catalog
}

// Client dispatches Trustap API operations. All mutable state is owned by
// one instance; independently configured clients coexist safely.
type Client struct {
	cfg      Config
	basePath string
	tr       transport.Transport
	cat      *catalog.Catalog
	sec      *security.Compiled
	warn     func(string)

	basicOnce    sync.Once
	basicToken   string
	basicEncodes int // guarded by basicOnce; read only in tests

	mu       sync.Mutex
	handlers map[string]OperationFunc
}

// New builds a client. Every catalog mapping's verb is validated here, so an
// unsupported verb fails construction rather than the first call.
func New(cfg Config) (*Client, error) {
	if cfg.APIURL == "" && cfg.Transport == nil {
		return nil, fmt.Errorf("api url is required")
	}
	for path, mode := range cfg.AuthOverrides {
		switch mode {
		case AuthBasic, AuthOAuth2, AuthAuto:
		default:
			return nil, fmt.Errorf("auth override for %q: invalid mode %q", path, mode)
		}
	}

	base, inferred := splitAPIURL(cfg.APIURL)
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = inferred
	}
	if basePath == "" {
		basePath = DefaultBasePath
	}
	basePath = "/" + strings.Trim(basePath, "/")

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	for _, id := range cat.OperationIDs() {
		m, _ := cat.Lookup(id)
		if !transport.IsSupportedMethod(string(m.Method)) {
			return nil, &UnsupportedMethodError{OperationID: id, Method: string(m.Method)}
		}
	}

	sec, err := security.Compile(securityMap(cat.Security()))
	if err != nil {
		return nil, fmt.Errorf("compiling security map: %w", err)
	}

	tr := cfg.Transport
	if tr == nil {
		tr = transport.New(base)
	}

	c := &Client{
		cfg:      cfg,
		basePath: basePath,
		tr:       tr,
		cat:      cat,
		sec:      sec,
		warn:     cfg.Warn,
		handlers: make(map[string]OperationFunc),
	}
	if c.warn == nil {
		c.warn = slogWarn
	}
	tr.Use(transport.Middleware{OnRequest: c.resolveAuth})
	return c, nil
}

// Raw exposes the unwrapped transport for verb-first calls that bypass
// operation ids entirely.
func (c *Client) Raw() transport.Transport {
	return c.tr
}

// BasePath returns the resolved path prefix.
func (c *Client) BasePath() string {
	return c.basePath
}

// splitAPIURL splits an API URL into the transport base (scheme://host) and
// the inferred base path. Unparseable input is used verbatim as the base.
func splitAPIURL(apiURL string) (base, inferredPath string) {
	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apiURL, ""
	}
	base = u.Scheme + "://" + u.Host
	if p := strings.Trim(u.Path, "/"); p != "" {
		inferredPath = "/" + p
	}
	return base, inferredPath
}

func securityMap(in catalog.SecurityMap) security.Map {
	out := make(security.Map, 0, len(in))
	for _, e := range in {
		out = append(out, security.Entry{Path: e.Path, Methods: e.Methods})
	}
	return out
}
