package mock

import "github.com/fwojciec/bulletin"

var _ bulletin.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of bulletin.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*bulletin.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*bulletin.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ bulletin.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of bulletin.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}

var _ bulletin.Converter = (*Converter)(nil)

// Converter is a mock implementation of bulletin.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
