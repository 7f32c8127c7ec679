package snippet_test

import (
	"strings"
	"testing"

	"github.com/minutary/minutary/internal/snippet"
)

func TestSanitize(t *testing.T) {
	for _, tcase := range []struct {
		name     string
		value    any
		expected string
	}{
		{"Plain text untouched", "meeting notes", "meeting notes"},
		{"Ampersand", "a & b", "a &amp; b"},
		{"Angle brackets", "<script>", "&lt;script&gt;"},
		{"Double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"Single quote", "it's", "it&#x27;s"},
		{"Slash", "a/b", "a&#x2F;b"},
		{"Backtick", "`code`", "&#x60;code&#x60;"},
		{"Equals", "a=b", "a&#x3D;b"},
		{"Number is stringified", 123, "123"},
		{"Empty string", "", ""},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			if escaped := snippet.Sanitize(tcase.value); escaped != tcase.expected {
				t.Errorf("expected %q, got %q", tcase.expected, escaped)
			}
		})
	}
}

func TestSanitizeDoesNotDoubleEscape(t *testing.T) {
	// The replacer runs in one pass, so the ampersands introduced by the
	// entity forms are never themselves rewritten.
	escaped := snippet.Sanitize("<&>")
	if escaped != "&lt;&amp;&gt;" {
		t.Errorf("expected single-pass escaping, got %q", escaped)
	}
	if strings.Contains(escaped, "&amp;lt;") {
		t.Error("entity output was escaped a second time")
	}
}
