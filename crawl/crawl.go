// Package crawl collects bulletin detail pages from list pages and turns
// them into records. It coordinates pagination, fetching with retry,
// per-domain rate limiting, rendering and extraction.
package crawl

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/bulletin"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel detail page fetches.
const DefaultConcurrency = 3

// Crawler orchestrates the crawling of bulletin sites.
type Crawler struct {
	Fetcher     bulletin.Fetcher
	Links       bulletin.LinkExtractor
	Extractor   bulletin.RecordExtractor
	RateLimiter bulletin.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Records []*bulletin.Record
	Pages   int
	Failed  int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Records   int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single detail page.
type pageResult struct {
	position int
	url      string
	records  []*bulletin.Record
	err      error
}

// Crawl discovers the detail pages of site, renders each with renderer and
// extracts its records. Records are returned in discovery order. Pages
// that fail are counted and reported through progress but do not stop
// the crawl.
func (c *Crawler) Crawl(ctx context.Context, site *bulletin.Site, renderer bulletin.Renderer, progress ProgressFunc) (*Result, error) {
	targets, err := c.Discover(ctx, site)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return &Result{}, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, len(targets))

	var completed atomic.Int64
	total := len(targets)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, target := range targets {
			g.Go(func() error {
				resultCh <- c.processPage(gctx, i, target, site, renderer)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]pageResult, len(targets))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
			Records:   len(result.records),
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	res := &Result{}
	for _, result := range results {
		if result.err != nil {
			res.Failed++
			continue
		}
		res.Pages++
		res.Records = append(res.Records, result.records...)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
			Records:   len(res.Records),
		})
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// processPage fetches, renders and extracts a single detail page.
func (c *Crawler) processPage(ctx context.Context, position int, target Target, site *bulletin.Site, renderer bulletin.Renderer) pageResult {
	result := pageResult{
		position: position,
		url:      target.URL,
	}

	html, err := c.fetch(ctx, target.URL)
	if err != nil {
		result.err = err
		return result
	}

	doc, err := renderer.Render(target.URL, html)
	if err != nil {
		result.err = err
		return result
	}
	if doc.Region == "" {
		doc.Region = target.Region
	}
	if doc.Category == "" {
		doc.Category = site.Category
	}
	if doc.Category == "" {
		doc.Category = bulletin.DefaultCategory
	}

	result.records = c.Extractor.Extract(doc)
	return result
}

// fetch waits for the domain limiter and fetches url with retry.
func (c *Crawler) fetch(ctx context.Context, url string) (string, error) {
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, hostOf(url)); err != nil {
			return "", err
		}
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, url, c.Fetcher.Fetch, c.Logger, delays)
}

func (c *Crawler) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger(format, args...)
	}
}
