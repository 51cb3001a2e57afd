package crawl

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/bloom"
)

const (
	// linksPerPage sizes the Bloom filter for one list page.
	linksPerPage = 50
	// discoverFalsePositiveRate tunes the Bloom pre-check; membership is
	// confirmed against an exact set.
	discoverFalsePositiveRate = 0.01
)

// Target is one detail page to render, with the region it belongs to.
type Target struct {
	URL    string
	Region string
}

// Discover walks the paginated lists of site and returns its detail pages
// in discovery order, followed by the site's direct detail URLs. A list
// stops at the first page that fails, has no links or adds no new URL.
func (c *Crawler) Discover(ctx context.Context, site *bulletin.Site) ([]Target, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	expected := uint(len(site.Lists)*site.PageLimit()*linksPerPage + len(site.Details) + 1)
	seen := bloom.NewFilter(expected, discoverFalsePositiveRate)

	var targets []Target
	add := func(u, region string) bool {
		if !seen.Visit(u) {
			return false
		}
		targets = append(targets, Target{URL: u, Region: region})
		return true
	}

	for _, list := range site.Lists {
		region := list.Region
		if region == "" {
			region = site.Region
		}

		for page := 1; page <= site.PageLimit(); page++ {
			if site.PageParam == "" && page > 1 {
				break
			}
			pageURL, err := PageURL(list.URL, site.PageParam, page)
			if err != nil {
				return nil, err
			}

			html, err := c.fetch(ctx, pageURL)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				c.logf("  list %s: %v", pageURL, err)
				break
			}

			links, err := c.Links.ExtractLinks(html, pageURL, site.LinkSelector)
			if err != nil {
				c.logf("  list %s: %v", pageURL, err)
				break
			}

			added := 0
			for _, link := range links {
				if add(link, region) {
					added++
				}
			}
			if added == 0 {
				break
			}
		}
	}

	for _, d := range site.Details {
		add(d, site.Region)
	}

	return targets, nil
}

// PageURL returns listURL with param set to page.
// An empty param returns listURL unchanged.
func PageURL(listURL, param string, page int) (string, error) {
	u, err := url.Parse(listURL)
	if err != nil {
		return "", bulletin.Errorf(bulletin.EINVALID, "invalid list URL %q: %v", listURL, err)
	}
	if param == "" {
		return listURL, nil
	}
	q := u.Query()
	q.Set(param, strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
