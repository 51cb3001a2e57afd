package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bulletin"
)

// Ensure Renderer implements bulletin.Renderer at compile time.
var _ bulletin.Renderer = (*Renderer)(nil)

// itemMarkerRe matches item markers that start a new line in rendered text.
var itemMarkerRe = regexp.MustCompile(`[▶▷►]`)

// bodyBulletRe matches a body bullet and the Hangul that follows it.
var bodyBulletRe = regexp.MustCompile(`[ㅇ○●\-※★]\s*\p{Hangul}`)

// Renderer turns detail pages into documents according to a render profile.
type Renderer struct {
	profile   bulletin.RenderProfile
	sanitizer bulletin.Sanitizer
	converter bulletin.Converter
	fallback  bulletin.ContentExtractor
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSanitizer cleans content HTML before it is turned into text.
func WithSanitizer(s bulletin.Sanitizer) Option {
	return func(r *Renderer) {
		r.sanitizer = s
	}
}

// WithConverter turns content HTML into text with c instead of the
// built-in text walker.
func WithConverter(c bulletin.Converter) Option {
	return func(r *Renderer) {
		r.converter = c
	}
}

// WithFallbackExtractor locates the content with e when no content
// selector of the profile matches.
func WithFallbackExtractor(e bulletin.ContentExtractor) Option {
	return func(r *Renderer) {
		r.fallback = e
	}
}

// NewRenderer creates a Renderer for one site profile.
func NewRenderer(profile bulletin.RenderProfile, opts ...Option) *Renderer {
	r := &Renderer{profile: profile}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render implements bulletin.Renderer.
func (r *Renderer) Render(pageURL, html string) (*bulletin.Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, bulletin.Errorf(bulletin.ERENDER, "empty page: %s", pageURL)
	}
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return nil, bulletin.Errorf(bulletin.EINVALID, "invalid page URL: %q", pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bulletin.Errorf(bulletin.ERENDER, "failed to parse HTML: %v", err)
	}
	for _, sel := range r.profile.Remove {
		doc.Find(sel).Remove()
	}

	title := joinedText(doc.Find("title").First())
	heading := r.heading(doc)
	if heading == "" {
		heading = title
	}

	content := r.content(doc, html)
	absolutize(content, base)
	images := r.images(doc, content, base)

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, bulletin.Errorf(bulletin.ERENDER, "failed to serialize content: %v", err)
	}
	if r.sanitizer != nil {
		contentHTML = r.sanitizer.Sanitize(contentHTML)
	}

	var text string
	if r.converter != nil {
		if text, err = r.converter.Convert(contentHTML); err != nil {
			return nil, bulletin.Errorf(bulletin.ERENDER, "failed to convert content: %v", err)
		}
	} else if text, err = renderText(contentHTML); err != nil {
		return nil, bulletin.Errorf(bulletin.ERENDER, "failed to render content: %v", err)
	}
	if r.profile.BreakBullets {
		text = bodyBulletRe.ReplaceAllString(text, "\n$0")
	}
	if r.profile.BreakMarkers {
		text = itemMarkerRe.ReplaceAllString(text, "\n$0")
	}

	lines := append(r.infoLines(doc), splitLines(text)...)

	return &bulletin.Document{
		URL:      pageURL,
		Title:    title,
		Heading:  heading,
		Lines:    lines,
		Images:   images,
		Category: r.category(doc),
	}, nil
}

func (r *Renderer) heading(doc *goquery.Document) string {
	for _, sel := range r.profile.Heading {
		if h := joinedText(doc.Find(sel).First()); h != "" {
			return h
		}
	}
	return ""
}

// content returns the first profile selection with text, then the
// fallback extractor's content, then the page body.
func (r *Renderer) content(doc *goquery.Document, html string) *goquery.Selection {
	for _, sel := range r.profile.Content {
		s := doc.Find(sel).First()
		if s.Length() > 0 && strings.TrimSpace(s.Text()) != "" {
			return s
		}
	}
	if r.fallback != nil {
		if res, err := r.fallback.Extract(html); err == nil && strings.TrimSpace(res.ContentHTML) != "" {
			if fd, err := goquery.NewDocumentFromReader(strings.NewReader(res.ContentHTML)); err == nil {
				return fd.Find("body")
			}
		}
	}
	return doc.Find("body")
}

// infoLines renders label/value pairs as "label : value" lines.
func (r *Renderer) infoLines(doc *goquery.Document) []string {
	var lines []string
	for _, info := range r.profile.Info {
		doc.Find(info.Item).Each(func(_ int, s *goquery.Selection) {
			label := joinedText(s.Find(info.Label).First())
			value := joinedText(s.Find(info.Value).First())
			if label != "" && value != "" {
				lines = append(lines, label+" : "+value)
			}
		})
	}
	return lines
}

func (r *Renderer) images(doc *goquery.Document, content *goquery.Selection, base *url.URL) []string {
	seen := make(map[string]struct{})
	var images []string
	add := func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || isNonHTTPLink(src) {
			return
		}
		abs := absoluteURL(base, src)
		if abs == "" || !strings.HasPrefix(abs, "http") {
			return
		}
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		images = append(images, abs)
	}
	content.Find("img").Each(add)
	if r.profile.Images != "" {
		doc.Find(r.profile.Images).Each(add)
	}
	return images
}

// category derives the category from the first breadcrumb segment.
// Returns empty string when the page has no breadcrumb.
func (r *Renderer) category(doc *goquery.Document) string {
	if r.profile.Breadcrumb == "" {
		return ""
	}
	crumb := joinedText(doc.Find(r.profile.Breadcrumb).First())
	var first string
	for _, part := range strings.Split(crumb, "|") {
		if part = strings.TrimSpace(part); part != "" {
			first = part
			break
		}
	}
	if first == "" {
		return ""
	}
	for _, rule := range r.profile.Categories {
		if rule.Contains != "" && strings.Contains(first, rule.Contains) {
			return rule.Category
		}
	}
	return first
}

// absolutize rewrites link and image URLs inside s to absolute form.
func absolutize(s *goquery.Selection, base *url.URL) {
	s.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if isNonHTTPLink(href) {
			return
		}
		if abs := absoluteURL(base, href); abs != "" {
			a.SetAttr("href", abs)
		}
	})
	s.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if abs := absoluteURL(base, src); abs != "" && !isNonHTTPLink(src) {
			img.SetAttr("src", abs)
		}
	})
}
