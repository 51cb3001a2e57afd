// Package bluemonday strips page content down to the markup needed to read
// its text.
package bluemonday

import (
	"github.com/fwojciec/bulletin"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements bulletin.Sanitizer at compile time.
var _ bulletin.Sanitizer = (*Sanitizer)(nil)

// Sanitizer removes scripts, styles, event handlers and presentational
// attributes while keeping text structure, links and images.
// Sanitizer is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the content policy.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "div", "span", "section", "article",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
		"strong", "b", "em", "i", "u", "blockquote", "pre",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	return &Sanitizer{policy: p}
}

// Sanitize implements bulletin.Sanitizer.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
