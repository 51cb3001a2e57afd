package mock

import (
	"context"

	"github.com/fwojciec/bulletin"
)

var _ bulletin.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bulletin.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ bulletin.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of bulletin.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL, selector string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html, baseURL, selector string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL, selector)
}

var _ bulletin.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of bulletin.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
