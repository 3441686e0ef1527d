package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	m, ok := c.Lookup("basic.getCharge")
	require.True(t, ok)
	assert.Equal(t, "/charge", m.Path)
	assert.Equal(t, MethodGet, m.Method)

	m, ok = c.Lookup("p2p.payDeposit")
	require.True(t, ok)
	assert.Equal(t, "/p2p/transactions/{transactionId}/pay_deposit", m.Path)
	assert.Equal(t, MethodPost, m.Method)

	_, ok = c.Lookup("no.such.op")
	assert.False(t, ok)
}

func TestDefaultCatalogMethodsSupported(t *testing.T) {
	supported := map[Method]bool{
		MethodGet: true, MethodPost: true, MethodPut: true,
		MethodDelete: true, MethodPatch: true, MethodHead: true, MethodOptions: true,
	}
	c := Default()
	for _, id := range c.OperationIDs() {
		m, _ := c.Lookup(id)
		assert.Truef(t, supported[m.Method], "operation %s has unsupported method %s", id, m.Method)
		assert.Truef(t, strings.HasPrefix(m.Path, "/"), "operation %s path %q lacks leading slash", id, m.Path)
	}
}

func TestMerge(t *testing.T) {
	c := Default().Merge(map[string]Mapping{
		"basic.getCharge": {Path: "/charge/v2", Method: MethodPost},
		"extra.newOp":     {Path: "/extra", Method: MethodGet},
	})

	m, ok := c.Lookup("basic.getCharge")
	require.True(t, ok)
	assert.Equal(t, "/charge/v2", m.Path)

	_, ok = c.Lookup("extra.newOp")
	assert.True(t, ok)

	// The original is untouched.
	m, _ = Default().Lookup("basic.getCharge")
	assert.Equal(t, "/charge", m.Path)
}

func TestParseMappings(t *testing.T) {
	data := []byte(`
basic.getCharge:
  path: /charge
  method: get
custom.listThings:
  path: /things
  method: GET
`)
	out, err := ParseMappings(data)
	require.NoError(t, err)
	assert.Equal(t, Mapping{Path: "/charge", Method: MethodGet}, out["basic.getCharge"])
	assert.Equal(t, Mapping{Path: "/things", Method: MethodGet}, out["custom.listThings"])
}

func TestParseMappingsJSON(t *testing.T) {
	data := []byte(`{"basic.getCharge": {"path": "/charge", "method": "GET"}}`)
	out, err := ParseMappings(data)
	require.NoError(t, err)
	assert.Equal(t, Mapping{Path: "/charge", Method: MethodGet}, out["basic.getCharge"])
}

func TestParseMappingsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad method", "op:\n  path: /x\n  method: TRACE\n"},
		{"missing path", "op:\n  method: GET\n"},
		{"relative path", "op:\n  path: x\n  method: GET\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMappings([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

const testOpenAPIDoc = `
openapi: "3.0.0"
info:
  title: Trustap API
  version: "1.0"
security:
  - OAuth2: []
paths:
  /charge:
    get:
      operationId: basic.getCharge
      security:
        - APIKey: []
      responses:
        "200":
          description: OK
  /transactions/{transactionId}:
    get:
      operationId: basic.getTransaction
      responses:
        "200":
          description: OK
components:
  securitySchemes:
    APIKey:
      type: http
      scheme: basic
    OAuth2:
      type: oauth2
      flows:
        authorizationCode:
          authorizationUrl: https://example.com/authorize
          tokenUrl: https://example.com/token
          scopes: {}
`

func TestFromOpenAPI(t *testing.T) {
	c, err := FromOpenAPI([]byte(testOpenAPIDoc))
	require.NoError(t, err)

	m, ok := c.Lookup("basic.getCharge")
	require.True(t, ok)
	assert.Equal(t, Mapping{Path: "/charge", Method: MethodGet}, m)

	m, ok = c.Lookup("basic.getTransaction")
	require.True(t, ok)
	assert.Equal(t, Mapping{Path: "/transactions/{transactionId}", Method: MethodGet}, m)

	sec := c.Security()
	require.Len(t, sec, 2)
	assert.Equal(t, []string{"APIKey"}, sec[0].Methods["GET"])
	// Document-level security applies where the operation declares none.
	assert.Equal(t, []string{"OAuth2"}, sec[1].Methods["GET"])
}

func TestFromOpenAPIRejectsSwagger2(t *testing.T) {
	_, err := FromOpenAPI([]byte("swagger: \"2.0\"\ninfo:\n  title: old\n  version: \"1\"\npaths: {}\n"))
	assert.Error(t, err)
}
