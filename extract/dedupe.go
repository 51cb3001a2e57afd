package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/bulletin"
)

var (
	spaceFold = strings.NewReplacer(
		"\u00a0", " ",
		"\u3000", " ",
		"\r\n", "\n",
		"\r", "\n",
	)
	hspaceRunRe = regexp.MustCompile(`[ \t]+`)
	lineBreakRe = regexp.MustCompile(`\s*\n\s*`)
)

// Canonicalize reduces text to the form used for duplicate detection:
// invisible characters removed, space runs collapsed to one space, blank
// lines collapsed and the ends trimmed. It is idempotent.
func Canonicalize(s string) string {
	s = zeroWidth.Replace(s)
	s = spaceFold.Replace(s)
	s = hspaceRunRe.ReplaceAllString(s, " ")
	s = lineBreakRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// keySep cannot appear in canonical text.
const keySep = "\x1f"

// CanonicalKey returns the identity of a record for deduplication: the
// canonical form of every field except the source URL and the full text.
func CanonicalKey(r *bulletin.Record) string {
	parts := []string{
		r.Region,
		r.Category,
		r.Title,
		r.Target,
		r.Period,
		r.Content,
		r.Method,
		r.Contact,
		r.Location,
		r.Notes,
		r.PurchaseMethod,
		r.ImageList(),
	}
	for i, p := range parts {
		parts[i] = Canonicalize(strings.ReplaceAll(p, keySep, " "))
	}
	return strings.Join(parts, keySep)
}

// Deduplicate keeps the first record of every canonical key, preserving
// order. Kept records are returned unmodified.
func Deduplicate(records []*bulletin.Record) []*bulletin.Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]*bulletin.Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		key := CanonicalKey(r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
