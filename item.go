package bulletin

import "strings"

// TitleMarker prefixes the item title in the reconstructed full text.
const TitleMarker = "▶"

// Item is one announcement unit extracted from a document.
type Item struct {
	Title       string
	DetailLines []string
	SourceURL   string
}

// FullText reconstructs the human-readable block for the item: the title
// followed by every detail line verbatim. It never depends on how the
// detail lines were classified.
func (i *Item) FullText() string {
	title := strings.TrimSpace(i.Title)
	lines := make([]string, 0, len(i.DetailLines))
	for _, ln := range i.DetailLines {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	body := strings.Join(lines, "\n")

	switch {
	case title != "" && body != "":
		return TitleMarker + " " + title + "\n" + body
	case title != "":
		return TitleMarker + " " + title
	default:
		return body
	}
}
