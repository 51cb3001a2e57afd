// Package readability locates the main content of pages with the
// Readability algorithm.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/bulletin"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements bulletin.ContentExtractor at compile time.
var _ bulletin.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL resolves relative links in the content against u.
func WithPageURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.pageURL = u
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*bulletin.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, bulletin.Errorf(bulletin.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, bulletin.Errorf(bulletin.ERENDER, "readability: %v", err)
	}

	return &bulletin.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
