package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/bulletin"
	bulletinbluemonday "github.com/fwojciec/bulletin/bluemonday"
	"github.com/fwojciec/bulletin/crawl"
	bulletinxlsx "github.com/fwojciec/bulletin/excelize"
	"github.com/fwojciec/bulletin/extract"
	"github.com/fwojciec/bulletin/fs"
	"github.com/fwojciec/bulletin/goquery"
	"github.com/fwojciec/bulletin/htmltomarkdown"
	bulletinhttp "github.com/fwojciec/bulletin/http"
	"github.com/fwojciec/bulletin/readability"
	"github.com/fwojciec/bulletin/rod"
	bulletinslog "github.com/fwojciec/bulletin/slog"
	"github.com/fwojciec/bulletin/sqlite"
	"github.com/fwojciec/bulletin/trafilatura"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	sites, err := selectSites(deps.Config, c.Sites)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bulletin.ErrorMessage(err))
		return err
	}

	formats, err := parseFormats(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bulletin.ErrorMessage(err))
		return err
	}

	extractor, err := extract.NewExtractor(deps.Config.Rules)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bulletin.ErrorMessage(err))
		return err
	}

	fetcher, err := c.fetcher(deps)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Fetcher:     bulletinslog.NewLoggingFetcher(fetcher, deps.Logger),
		Links:       bulletinslog.NewLoggingLinkExtractor(goquery.NewLinkExtractor(), deps.Logger),
		Extractor:   bulletinslog.NewLoggingRecordExtractor(extractor, deps.Logger),
		RateLimiter: crawl.NewDomainLimiter(deps.RateLimit),
		Concurrency: c.Concurrency,
		RetryDelays: deps.RetryDelays,
		Logger: func(format string, args ...any) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		},
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	var all []*bulletin.Record
	for _, site := range sites {
		if c.MaxPages > 0 {
			s := *site
			s.MaxPages = c.MaxPages
			site = &s
		}

		fmt.Fprintf(deps.Stdout, "%s\n", site.Name)
		renderer := bulletinslog.NewLoggingRenderer(c.renderer(site.Render), deps.Logger)
		result, err := crawler.Crawl(deps.Ctx, site, renderer, progress)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error crawling %s: %v\n", site.Name, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "  Extracted %d records from %d pages (%d failed)\n",
			len(result.Records), result.Pages, result.Failed)
		all = append(all, result.Records...)
	}

	records := extract.Deduplicate(all)

	name := c.Name
	if name == "" {
		name = "bulletin"
		if len(sites) == 1 {
			name = sites[0].Name
		}
	}

	for _, format := range formats {
		path := fs.OutputPath(c.Out, name, format)
		w := bulletinslog.NewLoggingRecordWriter(newFileWriter(format, path), path, deps.Logger)
		if err := w.WriteRecords(deps.Ctx, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", path, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d records to %s\n", len(records), path)
	}

	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set BULLETIN_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()

		n, err := sqlite.NewRecordService(db).CreateRecords(deps.Ctx, records)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bulletin.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Stored %d new records in %s\n", n, c.DB)
	}

	return nil
}

func (c *CrawlCmd) fetcher(deps *Dependencies) (bulletin.Fetcher, error) {
	if deps.Fetcher != nil {
		return deps.Fetcher, nil
	}
	if c.Browser {
		opts := []rod.Option{rod.WithFetchTimeout(c.Timeout)}
		if c.WaitFor != "" {
			opts = append(opts, rod.WithWaitSelector(c.WaitFor))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}
	return bulletinhttp.NewFetcher(bulletinhttp.WithTimeout(c.Timeout)), nil
}

func (c *CrawlCmd) renderer(profile bulletin.RenderProfile) bulletin.Renderer {
	return newRenderer(profile, c.Markdown, c.Extractor)
}

// newRenderer builds the page renderer shared by crawl and parse.
func newRenderer(profile bulletin.RenderProfile, markdown bool, fallback string) bulletin.Renderer {
	opts := []goquery.Option{
		goquery.WithSanitizer(bulletinbluemonday.NewSanitizer()),
	}
	if markdown {
		opts = append(opts, goquery.WithConverter(htmltomarkdown.NewConverter()))
	}
	switch fallback {
	case "trafilatura":
		opts = append(opts, goquery.WithFallbackExtractor(trafilatura.NewExtractor()))
	case "readability":
		opts = append(opts, goquery.WithFallbackExtractor(readability.NewExtractor()))
	}
	return goquery.NewRenderer(profile, opts...)
}

func newFileWriter(format, path string) bulletin.RecordWriter {
	switch format {
	case "json":
		return fs.NewJSONWriter(path)
	case "xlsx":
		return bulletinxlsx.NewWriter(path)
	default:
		return fs.NewCSVWriter(path)
	}
}

// parseFormats accepts repeated and comma-separated formats, dropping
// duplicates.
func parseFormats(values []string) ([]string, error) {
	var formats []string
	seen := map[string]bool{}
	for _, v := range values {
		for _, f := range strings.Split(v, ",") {
			f = strings.ToLower(strings.TrimSpace(f))
			if f == "" || seen[f] {
				continue
			}
			switch f {
			case "csv", "json", "xlsx":
			default:
				return nil, bulletin.Errorf(bulletin.EINVALID, "unknown output format %q", f)
			}
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// selectSites returns the named sites in order, or every site when names
// is empty.
func selectSites(cfg *bulletin.Config, names []string) ([]*bulletin.Site, error) {
	if len(names) == 0 {
		sites := make([]*bulletin.Site, len(cfg.Sites))
		for i := range cfg.Sites {
			sites[i] = &cfg.Sites[i]
		}
		return sites, nil
	}
	sites := make([]*bulletin.Site, 0, len(names))
	for _, name := range names {
		site, err := cfg.FindSite(name)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, nil
}
