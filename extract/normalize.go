package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	zeroWidth = strings.NewReplacer(
		"\u200b", "",
		"\u200c", "",
		"\u200d", "",
		"\u2060", "",
		"\ufeff", "",
	)
	entitySpace = strings.NewReplacer(
		"&nbsp;", " ",
		"&nbsp", " ",
	)
)

// NormalizeLine folds a raw line to NFC, removes invisible characters,
// collapses every whitespace run (including NBSP and the ideographic
// space) to a single space and trims the result.
func NormalizeLine(s string) string {
	s = norm.NFC.String(s)
	s = entitySpace.Replace(zeroWidth.Replace(s))
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeLines normalizes every line and drops the ones left empty.
func NormalizeLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		if ln = NormalizeLine(ln); ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

// keyDecorations are dropped from header text before matching.
const keyDecorations = "★☆•·∙⋅◦▶▷►■□○●◆◇❍※☞-–—=+()[]{}<>〈〉《》「」『』【】"

// NormalizeKey reduces header text to its matchable form: decorations and
// whitespace are removed and everything from the first colon or digit on
// is dropped.
func NormalizeKey(s string) string {
	key, _ := normalizeKey(s)
	return key
}

// normalizeKey also reports whether anything was cut at a colon or digit.
func normalizeKey(s string) (string, bool) {
	s = entitySpace.Replace(zeroWidth.Replace(norm.NFC.String(s)))
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune(keyDecorations, r) {
			continue
		}
		if r == ':' || r == '：' || (r >= '0' && r <= '9') {
			return b.String(), true
		}
		b.WriteRune(r)
	}
	return b.String(), false
}

// lineMarkers may open a detail line.
const lineMarkers = "▶▷►○●□■◆◇☆★-–•·∙⋅◦❍☞"

// bodyMarker is the jamo ㅇ used as a bullet in public notices.
const bodyMarker = 'ㅇ'

// stripMarker removes one leading bullet marker and the spaces after it.
// The jamo marker only counts when a space or a syllable follows it.
func stripMarker(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	rest := s[size:]
	switch {
	case strings.ContainsRune(lineMarkers, r):
	case r == bodyMarker:
		next, n := utf8.DecodeRuneInString(rest)
		if n == 0 || !(unicode.IsSpace(next) || isSyllable(next)) {
			return s
		}
	default:
		return s
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

func isSyllable(r rune) bool {
	return r >= '가' && r <= '힣'
}

// isBullet reports whether a line starts like a list entry.
func isBullet(s string) bool {
	if stripMarker(s) != strings.TrimLeftFunc(s, unicode.IsSpace) {
		return true
	}
	return numberedBulletRe.MatchString(s)
}
