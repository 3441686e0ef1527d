package security

import (
	"errors"
	"testing"
)

func compileOrFatal(t *testing.T, m Map) *Compiled {
	t.Helper()
	c, err := Compile(m)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return c
}

func TestResolveExact(t *testing.T) {
	c := compileOrFatal(t, Map{
		{Path: "/charge", Methods: MethodSchemes{"POST": {"APIKey"}}},
		{Path: "/transactions", Methods: MethodSchemes{"GET": {"OAuth2"}, "POST": {"OAuth2"}}},
	})

	tests := []struct {
		path, method string
		want         []string
	}{
		{"/charge", "POST", []string{"APIKey"}},
		{"/charge", "post", []string{"APIKey"}},
		{"/charge", "GET", nil},
		{"/transactions", "GET", []string{"OAuth2"}},
		{"/unknown", "GET", nil},
	}

	for _, tt := range tests {
		got := c.Resolve(tt.path, tt.method)
		if !equalSchemes(got, tt.want) {
			t.Errorf("Resolve(%q, %q) = %v, want %v", tt.path, tt.method, got, tt.want)
		}
	}
}

func TestResolvePattern(t *testing.T) {
	c := compileOrFatal(t, Map{
		{Path: "/transactions/{transactionId}", Methods: MethodSchemes{"GET": {"OAuth2"}}},
		{Path: "/transactions/{transactionId}/pay", Methods: MethodSchemes{"POST": {"OAuth2"}}},
	})

	if got := c.Resolve("/transactions/123", "GET"); !equalSchemes(got, []string{"OAuth2"}) {
		t.Errorf("Resolve() = %v, want [OAuth2]", got)
	}
	if got := c.Resolve("/transactions/123/pay", "POST"); !equalSchemes(got, []string{"OAuth2"}) {
		t.Errorf("Resolve() = %v, want [OAuth2]", got)
	}
	// A wildcard matches exactly one path segment.
	if got := c.Resolve("/transactions/123/456", "GET"); got != nil {
		t.Errorf("Resolve() = %v, want nil", got)
	}
}

func TestResolveExactBeatsPattern(t *testing.T) {
	c := compileOrFatal(t, Map{
		{Path: "/{any}", Methods: MethodSchemes{"POST": {"OAuth2"}}},
		{Path: "/charge", Methods: MethodSchemes{"POST": {"APIKey"}}},
	})

	if got := c.Resolve("/charge", "POST"); !equalSchemes(got, []string{"APIKey"}) {
		t.Errorf("Resolve(/charge) = %v, want [APIKey]", got)
	}
	if got := c.Resolve("/other", "POST"); !equalSchemes(got, []string{"OAuth2"}) {
		t.Errorf("Resolve(/other) = %v, want [OAuth2]", got)
	}
}

func TestResolveFirstPatternWins(t *testing.T) {
	c := compileOrFatal(t, Map{
		{Path: "/users/{userId}", Methods: MethodSchemes{"GET": {"OAuth2"}}},
		{Path: "/users/{anything}", Methods: MethodSchemes{"GET": {"APIKey"}}},
	})

	if got := c.Resolve("/users/1", "GET"); !equalSchemes(got, []string{"OAuth2"}) {
		t.Errorf("Resolve() = %v, want first declared entry's schemes", got)
	}
}

func TestResolveEmptySchemeListTerminatesScan(t *testing.T) {
	c := compileOrFatal(t, Map{
		{Path: "/public/{id}", Methods: MethodSchemes{"GET": {}}},
		{Path: "/{any}/{id}", Methods: MethodSchemes{"GET": {"OAuth2"}}},
	})

	got := c.Resolve("/public/1", "GET")
	if len(got) != 0 {
		t.Errorf("Resolve() = %v, want empty list from first match", got)
	}
}

func TestResolveMethodMissTriesLaterPatterns(t *testing.T) {
	c := compileOrFatal(t, Map{
		{Path: "/users/{userId}", Methods: MethodSchemes{"DELETE": {"OAuth2"}}},
		{Path: "/{any}/{id}", Methods: MethodSchemes{"GET": {"APIKey"}}},
	})

	if got := c.Resolve("/users/1", "GET"); !equalSchemes(got, []string{"APIKey"}) {
		t.Errorf("Resolve() = %v, want [APIKey] from later pattern", got)
	}
}

func TestCompileUnsafePattern(t *testing.T) {
	_, err := Compile(Map{
		{Path: "/users/(evil)|{id}", Methods: MethodSchemes{"GET": {"OAuth2"}}},
	})
	if err == nil {
		t.Fatal("expected error for unsafe pattern")
	}
	var unsafeErr *UnsafePatternError
	if !errors.As(err, &unsafeErr) {
		t.Fatalf("expected *UnsafePatternError, got %T", err)
	}
}

func equalSchemes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
