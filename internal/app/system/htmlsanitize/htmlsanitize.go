// Package htmlsanitize cleans author-supplied HTML fragments before they are
// rendered unescaped. Topic overviews may use inline formatting such as
// <code> and <strong>; everything else is escaped by the templates.
package htmlsanitize

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var policy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("mark", "u", "s", "sub", "sup")
	p.AllowAttrs("class").OnElements("code", "pre", "span")
	return p
})

// Sanitize returns s with scripts, event handlers, unsafe URLs and
// non-whitelisted elements removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy().Sanitize(s)
}

// HTML sanitizes s and marks it safe for html/template.
func HTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
