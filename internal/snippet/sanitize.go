package snippet

import (
	"fmt"
	"strings"
)

// escaper rewrites the eight characters that can break out of an HTML
// context into their entity forms. strings.Replacer works in a single
// left-to-right pass over the input, so replacement output is never
// re-escaped.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#x60;",
	"=", "&#x3D;",
)

// Sanitize escapes value for safe inclusion in HTML output. Non-string
// values are stringified first, so numbers and nil come out as their text
// forms.
func Sanitize(value any) string {
	text, ok := value.(string)
	if !ok {
		text = fmt.Sprint(value)
	}
	return escaper.Replace(text)
}
