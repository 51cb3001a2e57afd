package mock

import "github.com/fwojciec/bulletin"

var _ bulletin.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of bulletin.Renderer.
type Renderer struct {
	RenderFn func(url, html string) (*bulletin.Document, error)
}

func (r *Renderer) Render(url, html string) (*bulletin.Document, error) {
	return r.RenderFn(url, html)
}

var _ bulletin.RecordExtractor = (*RecordExtractor)(nil)

// RecordExtractor is a mock implementation of bulletin.RecordExtractor.
type RecordExtractor struct {
	ExtractFn func(doc *bulletin.Document) []*bulletin.Record
}

func (e *RecordExtractor) Extract(doc *bulletin.Document) []*bulletin.Record {
	return e.ExtractFn(doc)
}
