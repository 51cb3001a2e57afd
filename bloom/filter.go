// Package bloom tracks visited detail URLs. A Bloom filter answers most
// lookups for unseen URLs; an exact set confirms its positives so no new
// page is ever skipped.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter remembers detail URLs seen during discovery. URLs that differ
// only by fragment or a trailing slash are treated as the same page.
type Filter struct {
	f    *bloom.BloomFilter
	seen map[string]struct{}
}

// NewFilter creates a Filter sized for n expected URLs. fpRate tunes how
// often the exact set has to be consulted; it does not affect results.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f:    bloom.NewWithEstimates(n, fpRate),
		seen: make(map[string]struct{}, n),
	}
}

// Add records rawURL as seen.
func (f *Filter) Add(rawURL string) {
	f.Visit(rawURL)
}

// Test reports whether rawURL has been seen.
func (f *Filter) Test(rawURL string) bool {
	key := Key(rawURL)
	if !f.f.TestString(key) {
		return false
	}
	_, ok := f.seen[key]
	return ok
}

// Visit records rawURL and reports whether it was new.
func (f *Filter) Visit(rawURL string) bool {
	key := Key(rawURL)
	if f.f.TestAndAddString(key) {
		if _, ok := f.seen[key]; ok {
			return false
		}
	}
	f.seen[key] = struct{}{}
	return true
}

// Len returns the number of distinct URLs recorded.
func (f *Filter) Len() int {
	return len(f.seen)
}

// Key returns the form of rawURL used for membership.
func Key(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Host = strings.ToLower(u.Host)
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = ""
	}
	return u.String()
}
