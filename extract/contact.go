package extract

import (
	"regexp"
	"strings"
)

var (
	contactCutRe = regexp.MustCompile(`\[|첨부|바로보기|목록|이전글|다음글|만족|불만`)
	attachmentRe = regexp.MustCompile(`(?i)\.(?:pdf|hwpx?|docx?|xlsx?|pptx?|zip|jpe?g|png)`)
	phoneSeqRe   = regexp.MustCompile(`\d{2,4}\s*-\s*\d{3,4}\s*-\s*\d{4}(?:\s*/\s*\d{2,4}\s*-\s*\d{3,4}\s*-\s*\d{4})*`)
)

// CleanContact cuts a contact value at trailing page chrome or attachment
// names and, when it contains phone numbers, right after the first run of
// them.
func CleanContact(v string) string {
	if loc := contactCutRe.FindStringIndex(v); loc != nil {
		v = v[:loc[0]]
	}
	if loc := attachmentRe.FindStringIndex(v); loc != nil {
		v = v[:loc[0]]
	}
	if loc := phoneSeqRe.FindStringIndex(v); loc != nil {
		v = v[:loc[1]]
	}
	return strings.TrimSpace(v)
}
