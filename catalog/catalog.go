// Package catalog holds the Trustap operation catalog: the mapping from
// stable operation ids to endpoint paths and methods, and the declarative
// endpoint security table. The tables mirror the upstream API description;
// they are immutable reference data consumed by the client dispatcher.
package catalog

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Mapping ties one operation id to its endpoint.
type Mapping struct {
	Path   string `koanf:"path" yaml:"path" json:"path"`
	Method Method `koanf:"method" yaml:"method" json:"method"`
}

// SecurityEntry declares the acceptable security schemes for one path
// template, per HTTP method.
type SecurityEntry struct {
	Path    string
	Methods map[string][]string
}

// SecurityMap is the ordered endpoint security table. Order matters:
// parameterized entries are matched first-wins in declaration order.
type SecurityMap []SecurityEntry

// Catalog is one revision of the API surface.
type Catalog struct {
	operations map[string]Mapping
	security   SecurityMap
}

// New builds a catalog from an operation table and a security table. The
// input map is copied.
func New(operations map[string]Mapping, security SecurityMap) *Catalog {
	ops := make(map[string]Mapping, len(operations))
	for id, m := range operations {
		ops[id] = m
	}
	return &Catalog{operations: ops, security: security}
}

// Default returns the catalog generated from the bundled API description.
func Default() *Catalog {
	return New(defaultOperations, defaultSecurity)
}

// Lookup resolves an operation id to its mapping.
func (c *Catalog) Lookup(id string) (Mapping, bool) {
	m, ok := c.operations[id]
	return m, ok
}

// OperationIDs returns every operation id in the catalog, in no particular
// order.
func (c *Catalog) OperationIDs() []string {
	ids := make([]string, 0, len(c.operations))
	for id := range c.operations {
		ids = append(ids, id)
	}
	return ids
}

// Security returns the declarative security table.
func (c *Catalog) Security() SecurityMap {
	return c.security
}

// Merge overlays additional operation mappings onto the catalog, returning a
// new catalog. Later mappings win on id collision.
func (c *Catalog) Merge(operations map[string]Mapping) *Catalog {
	merged := make(map[string]Mapping, len(c.operations)+len(operations))
	for id, m := range c.operations {
		merged[id] = m
	}
	for id, m := range operations {
		merged[id] = m
	}
	return &Catalog{operations: merged, security: c.security}
}
