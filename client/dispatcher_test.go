package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationUnknownIDIsNil(t *testing.T) {
	c, err := New(Config{APIURL: "https://dev.trustap.com/api/v1"})
	require.NoError(t, err)

	assert.Nil(t, c.Operation("no.such.op"))
}

func TestOperationHandlerBuiltOnce(t *testing.T) {
	c, err := New(Config{APIURL: "https://dev.trustap.com/api/v1"})
	require.NoError(t, err)

	require.NotNil(t, c.Operation("basic.getTransaction"))
	require.NotNil(t, c.Operation("basic.getTransaction"))
	require.NotNil(t, c.Operation("basic.getCharge"))

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Len(t, c.handlers, 2)
}

func TestOperationDispatch(t *testing.T) {
	srv, seen := newTestServer(t)
	c, err := New(Config{APIURL: srv.URL + "/api/v1"})
	require.NoError(t, err)

	res, err := c.Operation("basic.getTransaction")(context.Background(), &RequestOptions{
		Params: &Params{Path: map[string]any{"transactionId": "tx_9"}},
	})
	require.NoError(t, err)
	assert.Nil(t, res.Error)

	require.Len(t, *seen, 1)
	assert.Equal(t, "GET", (*seen)[0].method)
	assert.Equal(t, "/api/v1/transactions/tx_9", (*seen)[0].path)
}

func TestOperationUnresolvedParamPassesThrough(t *testing.T) {
	srv, seen := newTestServer(t)
	c, err := New(Config{APIURL: srv.URL + "/api/v1"})
	require.NoError(t, err)

	_, err = c.Operation("basic.getTransaction")(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/transactions/{transactionId}", (*seen)[0].path)
}

func TestLegacyAndModernQueryEquivalent(t *testing.T) {
	srv, seen := newTestServer(t)
	var warnings []string
	c, err := New(Config{
		APIURL: srv.URL + "/api/v1",
		Warn:   func(msg string) { warnings = append(warnings, msg) },
	})
	require.NoError(t, err)

	op := c.Operation("basic.getCharge")
	_, err = op(context.Background(), &RequestOptions{Query: map[string]any{"price": 2500, "currency": "eur"}})
	require.NoError(t, err)
	_, err = op(context.Background(), &RequestOptions{Params: &Params{Query: map[string]any{"price": 2500, "currency": "eur"}}})
	require.NoError(t, err)

	require.Len(t, *seen, 2)
	assert.Equal(t, (*seen)[0].query, (*seen)[1].query)
	assert.Len(t, warnings, 1, "only the legacy shape warns")
}

func TestPathClient(t *testing.T) {
	srv, seen := newTestServer(t)
	c, err := New(Config{APIURL: srv.URL + "/api/v1"})
	require.NoError(t, err)

	_, err = c.Path("/transactions/{transactionId}/pay").Post(context.Background(), &RequestOptions{
		Params: &Params{Path: map[string]any{"transactionId": "7"}},
	})
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.Equal(t, "POST", (*seen)[0].method)
	assert.Equal(t, "/api/v1/transactions/7/pay", (*seen)[0].path)
}

func TestRawBypassesOperations(t *testing.T) {
	srv, seen := newTestServer(t)
	c, err := New(Config{APIURL: srv.URL + "/api/v1"})
	require.NoError(t, err)

	_, err = c.Raw().Get(context.Background(), "/api/v1/me", nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/me", (*seen)[0].path)
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"/api/v1", "/charge", "/api/v1/charge"},
		{"/api/v1/", "/charge", "/api/v1/charge"},
		{"/api/v1", "charge", "/api/v1/charge"},
		{"/", "/charge", "/charge"},
		{"/api/v1", "//charge", "/api/v1/charge"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, joinPath(tt.base, tt.path), "joinPath(%q, %q)", tt.base, tt.path)
	}
}
