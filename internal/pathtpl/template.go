// Package pathtpl compiles path strings with {name} placeholders into
// reusable substitution functions.
package pathtpl

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Template substitutes named parameters into a compiled path.
type Template struct {
	raw      string
	literals []string // len(params)+1 literal segments
	params   []string // parameter name per slot
}

// ParamTypeError reports a path parameter whose value cannot be stringified.
type ParamTypeError struct {
	Param string
	Value any
}

func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("path parameter %q has unsupported type %T", e.Param, e.Value)
}

// Compile parses placeholder tokens once. Templates without placeholders
// apply as constants.
func Compile(path string) *Template {
	matches := placeholderRe.FindAllStringSubmatchIndex(path, -1)
	if len(matches) == 0 {
		return &Template{raw: path}
	}

	t := &Template{raw: path}
	prev := 0
	for _, m := range matches {
		t.literals = append(t.literals, path[prev:m[0]])
		t.params = append(t.params, path[m[2]:m[3]])
		prev = m[1]
	}
	t.literals = append(t.literals, path[prev:])
	return t
}

// Raw returns the uncompiled template string.
func (t *Template) Raw() string {
	return t.raw
}

// Apply substitutes params into the template. A missing or nil value leaves
// the literal {name} token in place so callers can detect unresolved
// templates by substring search.
func (t *Template) Apply(params map[string]any) (string, error) {
	if len(t.params) == 0 {
		return t.raw, nil
	}

	var b strings.Builder
	for i, name := range t.params {
		b.WriteString(t.literals[i])

		v, ok := params[name]
		if !ok || v == nil {
			b.WriteString("{" + name + "}")
			continue
		}
		s, err := stringify(name, v)
		if err != nil {
			return "", err
		}
		b.WriteString(url.PathEscape(s))
	}
	b.WriteString(t.literals[len(t.literals)-1])
	return b.String(), nil
}

func stringify(name string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case time.Time:
		return x.Format(time.RFC3339), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", &ParamTypeError{Param: name, Value: v}
	}
}
