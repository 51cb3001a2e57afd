package extract

import (
	"regexp"
	"strings"
)

var (
	// noiseRe matches page chrome that ends the useful part of an item:
	// bracketed tags, satisfaction surveys and footer navigation.
	noiseRe = regexp.MustCompile(`\[[^\]]+\].*|해당 메뉴에 대한 만족도|만족도\s*(?:조사|평가)|아주\s*만족|아주\s*불만|^보통$|만족\s*보통|보통\s*불만|^(?:첨부파일|목록|이전글|다음글)(?:\s|$)`)

	// contactLineRe matches lines that open a contact block.
	contactLineRe = regexp.MustCompile(`^(?:[ㅇ○●■□▶▷•·\-]\s*)?(?:문\s*의|연\s*락\s*처)`)
)

// TrimNoise truncates an item's detail lines at the first noise line.
// A contact line carrying trailing noise keeps its text up to the noise.
func TrimNoise(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		text := strings.TrimSpace(ln)
		if contactLineRe.MatchString(text) {
			if loc := noiseRe.FindStringIndex(text); loc != nil {
				text = strings.TrimSpace(text[:loc[0]])
			}
			if text != "" {
				out = append(out, text)
			}
			continue
		}
		if noiseRe.MatchString(text) {
			break
		}
		out = append(out, ln)
	}
	return out
}
