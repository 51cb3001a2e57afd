// Package trafilatura locates the main content of pages that have no
// site-specific content selector.
package trafilatura

import (
	"regexp"
	"strings"

	"github.com/fwojciec/bulletin"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ bulletin.ContentExtractor = (*Extractor)(nil)

// siteSuffixRe matches the institution suffix government sites append to
// page titles, as in "공지 | 중구청" or "공지 < 알림마당".
var siteSuffixRe = regexp.MustCompile(`\s+[|<>]\s+.*$`)

// Extractor finds the main content block with go-trafilatura. Links and
// images are kept since bulletins point at application pages and posters.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor returns an Extractor with comments excluded and the
// fallback extractors enabled.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			IncludeImages:   true,
			IncludeLinks:    true,
		},
	}
}

// Extract returns the main content as HTML along with a cleaned page title.
// A page with no detectable main content is ERENDER.
func (e *Extractor) Extract(rawHTML string) (*bulletin.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, bulletin.Errorf(bulletin.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, bulletin.Errorf(bulletin.ERENDER, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return nil, bulletin.Errorf(bulletin.ERENDER, "trafilatura: no main content")
	}

	var b strings.Builder
	if err := html.Render(&b, result.ContentNode); err != nil {
		return nil, bulletin.Errorf(bulletin.ERENDER, "render content: %v", err)
	}

	return &bulletin.ExtractResult{
		Title:       cleanTitle(result.Metadata.Title),
		ContentHTML: b.String(),
	}, nil
}

func cleanTitle(s string) string {
	return strings.TrimSpace(siteSuffixRe.ReplaceAllString(strings.TrimSpace(s), ""))
}
