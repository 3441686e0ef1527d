package catalog

import (
	"fmt"
	"strings"

	yaml "go.yaml.in/yaml/v4"
)

// ParseMappings parses an operation-mapping overlay in the generated paths
// table format: a mapping from operation id to {path, method}. YAML is a
// superset of JSON, so regenerated catalog data can ship in either form.
func ParseMappings(data []byte) (map[string]Mapping, error) {
	var raw map[string]Mapping
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing operation mappings: %w", err)
	}

	out := make(map[string]Mapping, len(raw))
	for id, m := range raw {
		if m.Path == "" {
			return nil, fmt.Errorf("operation %q: path is required", id)
		}
		if !strings.HasPrefix(m.Path, "/") {
			return nil, fmt.Errorf("operation %q: path %q must start with /", id, m.Path)
		}
		method := Method(strings.ToUpper(string(m.Method)))
		switch method {
		case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead, MethodOptions:
		default:
			return nil, fmt.Errorf("operation %q: unsupported method %q", id, m.Method)
		}
		out[id] = Mapping{Path: m.Path, Method: method}
	}
	return out, nil
}
