package bulletin

// ExtractResult contains the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title (may be empty).
	Title string

	// ContentHTML is the main content as cleaned HTML.
	ContentHTML string
}

// ContentExtractor finds the main content of an HTML page when no
// site-specific content selector matches.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Sanitizer strips everything except the markup needed to read content text.
type Sanitizer interface {
	Sanitize(html string) string
}

// Converter transforms content HTML into line-oriented plain text.
type Converter interface {
	Convert(html string) (string, error)
}
