// Package htmltomarkdown turns content HTML into line-oriented text by way
// of Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/bulletin"
)

// Ensure Converter implements bulletin.Converter at compile time.
var _ bulletin.Converter = (*Converter)(nil)

var (
	imageRe    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe     = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)
	headingRe  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	strongRe   = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	emphasisRe = regexp.MustCompile(`(^|[^\w*])[*_]([^*_\n]+)[*_]`)
	escapeRe   = regexp.MustCompile(`\\([\\\-*_#\[\]().!+>|~` + "`" + `])`)
)

// Converter wraps html-to-markdown and strips the Markdown syntax that
// carries no content, keeping list markers and link targets.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into plain text lines.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", bulletin.Errorf(bulletin.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return plainText(md), nil
}

// plainText removes Markdown decoration from md.
func plainText(md string) string {
	md = imageRe.ReplaceAllString(md, "")
	md = linkRe.ReplaceAllStringFunc(md, func(m string) string {
		sub := linkRe.FindStringSubmatch(m)
		text, href := strings.TrimSpace(sub[1]), sub[2]
		if text == "" || text == href {
			return href
		}
		return text + " (" + href + ")"
	})
	md = headingRe.ReplaceAllString(md, "")
	md = strongRe.ReplaceAllString(md, "$1$2")
	md = emphasisRe.ReplaceAllString(md, "$1$2")
	md = escapeRe.ReplaceAllString(md, "$1")

	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if isTableRule(ln) {
			continue
		}
		if strings.HasPrefix(ln, "|") && strings.HasSuffix(ln, "|") && len(ln) > 1 {
			ln = tableRow(ln)
		}
		out = append(out, ln)
	}
	return strings.Join(out, "\n")
}

// isTableRule reports whether ln is a table separator or a thematic break.
func isTableRule(ln string) bool {
	if !strings.Contains(ln, "---") {
		return false
	}
	return strings.Trim(ln, "|-: ") == ""
}

func tableRow(ln string) string {
	cells := strings.Split(strings.Trim(ln, "|"), "|")
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
