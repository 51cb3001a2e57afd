// Package http implements bulletin.Fetcher over plain HTTP for bulletin
// sites that render on the server.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/bulletin"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout bounds one request including reading the body.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the collector to the sites it visits.
const DefaultUserAgent = "Mozilla/5.0 (compatible; DataCollectionBot/1.0)"

// MaxBodySize caps how much of a page is read.
const MaxBodySize = 8 << 20

var _ bulletin.Fetcher = (*Fetcher)(nil)

// Fetcher downloads pages with net/http and returns them as UTF-8. It does
// not run scripts; rod.Fetcher covers pages that need a browser.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher returns a Fetcher with its own http.Client.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch GETs url and decodes the body from the charset declared in the
// Content-Type header or the page's meta tags. EUC-KR pages come back as
// UTF-8. Non-2xx responses and blank bodies are EFETCH.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", bulletin.Errorf(bulletin.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", bulletin.Errorf(bulletin.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return "", err
	}
	body, err := decode(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", bulletin.Errorf(bulletin.EFETCH, "decode %s: %v", url, err)
	}
	if strings.TrimSpace(body) == "" {
		return "", bulletin.Errorf(bulletin.EFETCH, "empty body for %s", url)
	}
	return body, nil
}

// Close is a no-op; the client holds no resources that need releasing.
func (f *Fetcher) Close() error {
	return nil
}

func decode(raw []byte, contentType string) (string, error) {
	enc, name, _ := charset.DetermineEncoding(raw, contentType)
	if name == "utf-8" {
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
