package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/extract"
)

// genericProfile renders pages of sites without a configured profile.
var genericProfile = bulletin.RenderProfile{
	Content: []string{".board_view", ".board-view", ".bbs_view", ".bbs-view", "#content", "article", "main"},
	Heading: []string{"h3"},
	Remove:  []string{".blind", "script", "style"},
}

// Run executes the parse command. Records are printed to stdout as JSON.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	extractor, err := extract.NewExtractor(deps.Config.Rules)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bulletin.ErrorMessage(err))
		return err
	}

	doc, err := c.document(deps, string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bulletin.ErrorMessage(err))
		return err
	}
	if c.Title != "" {
		doc.Heading = c.Title
	}
	if c.Region != "" {
		doc.Region = c.Region
	}
	if c.Category != "" {
		doc.Category = c.Category
	}

	records := extract.Deduplicate(extractor.Extract(doc))
	if records == nil {
		records = []*bulletin.Record{}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func (c *ParseCmd) document(deps *Dependencies, text string) (*bulletin.Document, error) {
	if c.Site == "" && !c.HTML {
		return &bulletin.Document{
			URL:   c.URL,
			Lines: strings.Split(text, "\n"),
		}, nil
	}

	profile := genericProfile
	var region, category string
	if c.Site != "" {
		site, err := deps.Config.FindSite(c.Site)
		if err != nil {
			return nil, err
		}
		profile = site.Render
		region, category = site.Region, site.Category
	}

	pageURL := c.URL
	if pageURL == "" {
		pageURL = "http://localhost/" + url.PathEscape(filepath.Base(c.File))
	}
	doc, err := newRenderer(profile, false, "none").Render(pageURL, text)
	if err != nil {
		return nil, err
	}
	if doc.Region == "" {
		doc.Region = region
	}
	if doc.Category == "" {
		doc.Category = category
	}
	return doc, nil
}
