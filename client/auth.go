package client

import (
	"encoding/base64"
	"net/http"
	"regexp"
	"slices"
	"strings"
)

// Some endpoints' declared security metadata is insufficient on its own;
// these suffixes always take the partner's Basic credentials.
var basicAuthSuffixes = []string{"/charge", "/p2p/charge", "/guest_users"}

var genericPrefixRe = regexp.MustCompile(`^/api/v\d+`)

// resolveAuth is installed as transport request middleware. It decides which
// Authorization header to attach, but never overwrites one already present.
func (c *Client) resolveAuth(req *http.Request) (*http.Request, error) {
	if req.Header.Get("Authorization") != "" {
		return req, nil
	}

	pathname := req.URL.Path
	normalized := c.stripBasePath(pathname)

	mode, ok := c.cfg.AuthOverrides[normalized]
	if !ok {
		mode, ok = c.cfg.AuthOverrides[pathname]
	}
	if !ok {
		mode = AuthAuto
	}

	useBasic := false
	switch mode {
	case AuthBasic:
		useBasic = true
	case AuthOAuth2:
		useBasic = false
	default:
		schemes := c.sec.Resolve(normalized, req.Method)
		useBasic = slices.Contains(schemes, "APIKey") || hasBasicSuffix(normalized)
	}

	if useBasic && c.cfg.BasicAuth != nil {
		req.Header.Set("Authorization", "Basic "+c.encodedBasicToken())
		return req, nil
	}

	if c.cfg.AccessToken != nil {
		token, err := c.cfg.AccessToken(req.Context())
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// stripBasePath removes the client's base path prefix from pathname, falling
// back to a generic /api/v<digits> prefix. The result always begins with /.
func (c *Client) stripBasePath(pathname string) string {
	rest := pathname
	if c.basePath != "/" && strings.HasPrefix(pathname, c.basePath) {
		rest = pathname[len(c.basePath):]
	} else if m := genericPrefixRe.FindString(pathname); m != "" {
		rest = pathname[len(m):]
	}
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return rest
}

func hasBasicSuffix(pathname string) bool {
	for _, suffix := range basicAuthSuffixes {
		if strings.HasSuffix(pathname, suffix) {
			return true
		}
	}
	return false
}

// encodedBasicToken memoizes the Basic credential encoding for the lifetime
// of the client; the same pair is never re-encoded per call.
func (c *Client) encodedBasicToken() string {
	c.basicOnce.Do(func() {
		auth := c.cfg.BasicAuth
		c.basicToken = base64.StdEncoding.EncodeToString([]byte(auth.Username + ":" + auth.Password))
		c.basicEncodes++
	})
	return c.basicToken
}
