package bulletin

import "context"

// Fetcher retrieves HTML content from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML content from the given URL.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// LinkExtractor pulls detail-page links out of a list page.
type LinkExtractor interface {
	// ExtractLinks returns absolute URLs of the elements matching selector,
	// in document order with duplicates removed.
	ExtractLinks(html, baseURL, selector string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until a request to the given domain is allowed.
	Wait(ctx context.Context, domain string) error
}
