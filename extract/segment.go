package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/bulletin"
)

var (
	bracketTitleRe   = regexp.MustCompile(`^[<〈《](.+)[>〉》]$`)
	numberedHeadRe   = regexp.MustCompile(`^\d+\.\s*[A-Za-z가-힣]`)
	numberedBulletRe = regexp.MustCompile(`^(?:\d+[.)]|\(\d+\)|[①-⑳])`)
)

// itemMarkers open a new item when they start a line.
const itemMarkers = "▶▷►"

// dropTokens mark navigation lines that never belong to an item.
var dropTokens = []string{"첨부", "바로보기", "목록", "이전글", "다음글"}

// Segmenter splits a document's lines into items.
type Segmenter struct {
	// NumberedHeadings treats "N. Title" lines as item boundaries.
	NumberedHeadings bool

	// MergeContinuations joins a line that does not start with the body
	// marker onto the previous detail line.
	MergeContinuations bool
}

// Segment groups lines into items. Lines repeating the page heading are
// skipped, and items that never collect a detail line are dropped. When no
// boundary is found at all, one item titled by the heading holds every line.
func (s *Segmenter) Segment(lines []string, heading string) []*bulletin.Item {
	var (
		items []*bulletin.Item
		cur   *bulletin.Item
	)
	flush := func() {
		if cur != nil && len(cur.DetailLines) > 0 {
			items = append(items, cur)
		}
		cur = nil
	}

	pageTitle := stripBrackets(heading)
	isHeading := func(ln string) bool {
		return pageTitle != "" && stripBrackets(ln) == pageTitle
	}

	for _, ln := range lines {
		if hasDropToken(ln) {
			continue
		}
		if title, ok := s.boundary(ln); ok {
			flush()
			cur = &bulletin.Item{Title: title}
			continue
		}
		if cur == nil || isHeading(ln) {
			continue
		}
		if s.MergeContinuations && len(cur.DetailLines) > 0 && !strings.HasPrefix(ln, string(bodyMarker)) {
			last := len(cur.DetailLines) - 1
			cur.DetailLines[last] += " " + ln
			continue
		}
		cur.DetailLines = append(cur.DetailLines, ln)
	}
	flush()

	if len(items) > 0 || len(lines) == 0 {
		return items
	}

	title := strings.TrimSpace(heading)
	if title == "" {
		title = bulletin.FallbackTitle
	}
	item := &bulletin.Item{Title: title}
	for _, ln := range lines {
		if !isHeading(ln) {
			item.DetailLines = append(item.DetailLines, ln)
		}
	}
	return []*bulletin.Item{item}
}

// boundary reports whether ln opens a new item and returns its title.
func (s *Segmenter) boundary(ln string) (string, bool) {
	if strings.ContainsRune(itemMarkers, firstRune(ln)) {
		return strings.TrimSpace(strings.TrimLeft(ln, itemMarkers+" ")), true
	}
	if m := bracketTitleRe.FindStringSubmatch(ln); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if s.NumberedHeadings && numberedHeadRe.MatchString(ln) {
		return ln, true
	}
	return "", false
}

func hasDropToken(ln string) bool {
	for _, tok := range dropTokens {
		if strings.HasPrefix(ln, tok) {
			return true
		}
	}
	return false
}

func stripBrackets(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "<>〈〉《》[]【】"))
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
