package bulletin

import (
	"net/url"
	"strings"
)

// DefaultMaxPages bounds list pagination when a site does not set it.
const DefaultMaxPages = 30

// Site describes one bulletin source: where its list pages are and how its
// detail pages render.
type Site struct {
	Name     string
	Region   string
	Category string

	// Lists are paginated list pages whose links lead to detail pages.
	Lists []ListSource

	// Details are detail pages fetched directly, without a list.
	Details []string

	// LinkSelector matches detail links on list pages.
	LinkSelector string

	// PageParam is the query parameter carrying the page number.
	PageParam string

	// MaxPages bounds pagination per list.
	MaxPages int

	Render RenderProfile
}

// ListSource is one paginated list. A non-empty Region overrides the
// site region for every page discovered through it.
type ListSource struct {
	URL    string
	Region string
}

// RenderProfile tells a Renderer where the content of a detail page is.
type RenderProfile struct {
	// Content selectors are tried in order; the first non-empty match wins.
	Content []string

	// Heading selectors locate the page heading. The page <title> is used
	// when none match.
	Heading []string

	// Breadcrumb locates the navigation path used to derive a category.
	Breadcrumb string

	// Categories map breadcrumb text to a category by substring.
	Categories []CategoryRule

	// Remove selectors are deleted before anything else is read.
	Remove []string

	// Info pairs are rendered as "label : value" lines ahead of the content.
	Info []InfoSelector

	// Images selects additional images outside the content node.
	Images string

	// BreakMarkers starts a new line before every item marker.
	BreakMarkers bool

	// BreakBullets starts a new line before a body bullet (ㅇ ○ ● - ※ ★)
	// followed by Hangul.
	BreakBullets bool
}

// CategoryRule maps breadcrumb text containing Contains to Category.
type CategoryRule struct {
	Contains string
	Category string
}

// InfoSelector locates label/value pairs such as a contact block.
type InfoSelector struct {
	Item  string
	Label string
	Value string
}

// PageLimit returns the pagination bound for the site.
func (s *Site) PageLimit() int {
	if s.MaxPages > 0 {
		return s.MaxPages
	}
	return DefaultMaxPages
}

// Validate returns an error if the site cannot be crawled.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(EINVALID, "site name required")
	}
	if len(s.Lists) == 0 && len(s.Details) == 0 {
		return Errorf(EINVALID, "site %q: at least one list or detail URL required", s.Name)
	}
	if len(s.Lists) > 0 && s.LinkSelector == "" {
		return Errorf(EINVALID, "site %q: link selector required for list pages", s.Name)
	}
	for _, l := range s.Lists {
		if !isHTTPURL(l.URL) {
			return Errorf(EINVALID, "site %q: invalid list URL %q", s.Name, l.URL)
		}
	}
	for _, d := range s.Details {
		if !isHTTPURL(d) {
			return Errorf(EINVALID, "site %q: invalid detail URL %q", s.Name, d)
		}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Config is the complete runtime configuration: extraction rules and the
// site catalog.
type Config struct {
	Rules Rules
	Sites []Site
}

// FindSite returns the site with the given name.
func (c *Config) FindSite(name string) (*Site, error) {
	for i := range c.Sites {
		if c.Sites[i].Name == name {
			return &c.Sites[i], nil
		}
	}
	return nil, Errorf(ENOTFOUND, "site %q not found", name)
}
