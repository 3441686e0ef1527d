// Package security compiles a declarative endpoint→scheme table into an
// exact-match index plus an ordered pattern list, and resolves the schemes
// declared for a (path, method) pair.
package security

import (
	"fmt"
	"regexp"
	"strings"
)

// MethodSchemes maps an HTTP method to its ordered security scheme names.
type MethodSchemes map[string][]string

// Entry declares the schemes for one path template. Entries are kept as a
// slice because pattern lookups are resolved in declaration order.
type Entry struct {
	Path    string
	Methods MethodSchemes
}

// Map is the declarative security table, in declaration order.
type Map []Entry

var (
	placeholderRe = regexp.MustCompile(`\{[A-Za-z_][A-Za-z0-9_]*\}`)

	// Word characters, path separators, and the metacharacters the
	// placeholder rewrite produces. Anything else fails compilation.
	safePatternRe = regexp.MustCompile(`^[\w/\-.\[\]^$+]+$`)
)

// UnsafePatternError reports a rewritten path pattern that failed the safe
// character set check.
type UnsafePatternError struct {
	Path    string
	Pattern string
}

func (e *UnsafePatternError) Error() string {
	return fmt.Sprintf("security map path %q compiles to unsafe pattern %q", e.Path, e.Pattern)
}

type patternEntry struct {
	re      *regexp.Regexp
	methods MethodSchemes
}

// Compiled is the lookup structure produced by Compile. Exact lookups are
// O(1); pattern lookups scan parameterized entries in declaration order.
type Compiled struct {
	exact    map[string]MethodSchemes
	patterns []patternEntry
}

// Compile builds the lookup structure. Paths without placeholders go into
// the exact index; parameterized paths have each {name} segment rewritten to
// a single-path-segment wildcard and are appended to the pattern list.
func Compile(m Map) (*Compiled, error) {
	c := &Compiled{exact: make(map[string]MethodSchemes, len(m))}

	for _, e := range m {
		methods := normalizeMethods(e.Methods)

		if !strings.Contains(e.Path, "{") {
			c.exact[e.Path] = methods
			continue
		}

		pattern := "^" + placeholderRe.ReplaceAllString(e.Path, `[^/]+`) + "$"
		if !safePatternRe.MatchString(pattern) {
			return nil, &UnsafePatternError{Path: e.Path, Pattern: pattern}
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling security pattern for %q: %w", e.Path, err)
		}
		c.patterns = append(c.patterns, patternEntry{re: re, methods: methods})
	}

	return c, nil
}

func normalizeMethods(in MethodSchemes) MethodSchemes {
	out := make(MethodSchemes, len(in))
	for method, schemes := range in {
		out[strings.ToUpper(method)] = schemes
	}
	return out
}

// Resolve returns the schemes declared for pathname and method. The exact
// index wins; on a miss the pattern list is scanned in declaration order and
// the first pattern matching the full pathname with the method present wins,
// even when its scheme list is explicitly empty. No match yields nil.
func (c *Compiled) Resolve(pathname, method string) []string {
	method = strings.ToUpper(method)

	if methods, ok := c.exact[pathname]; ok {
		return methods[method]
	}
	for _, p := range c.patterns {
		if !p.re.MatchString(pathname) {
			continue
		}
		if schemes, ok := p.methods[method]; ok {
			return schemes
		}
	}
	return nil
}
