package bulletin

// FallbackTitle titles the single item synthesized for a document that
// has no recognizable item boundaries and no heading.
const FallbackTitle = "(본문)"

// Document is the ordered text of one rendered detail page together with
// the page-level metadata that flows into every record built from it.
type Document struct {
	URL      string
	Title    string
	Heading  string
	Lines    []string
	Images   []string
	Region   string
	Category string
}

// FallbackHeading returns the heading used to title and filter a document
// without item boundaries.
func (d *Document) FallbackHeading() string {
	if d.Heading != "" {
		return d.Heading
	}
	return d.Title
}

// Renderer turns the HTML of one detail page into a Document.
type Renderer interface {
	Render(url, html string) (*Document, error)
}

// RecordExtractor turns one Document into records, one per item.
type RecordExtractor interface {
	Extract(doc *Document) []*Record
}
