package crawl

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/bulletin"
)

// FetchFunc fetches the raw markup of one page.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives printf-style progress lines.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the pauses between fetch attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays calls fetch once, then once more after each delay
// until a non-blank body comes back. Errors coded EINVALID are returned
// at once since another attempt cannot fix them. When every attempt fails
// the error has code EFETCH.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logf LogFunc, delays []time.Duration) (string, error) {
	attempts := len(delays) + 1

	var lastErr error
	for i := range attempts {
		if i > 0 {
			if logf != nil {
				logf("  retry %s (attempt %d): %v", url, i+1, lastErr)
			}
			if err := sleep(ctx, delays[i-1]); err != nil {
				return "", err
			}
		}

		body, err := fetchOnce(ctx, url, fetch)
		if err == nil {
			return body, nil
		}
		if bulletin.ErrorCode(err) == bulletin.EINVALID {
			return "", err
		}
		lastErr = err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", bulletin.Errorf(bulletin.EFETCH, "fetch %s: %d attempts failed: %v", url, attempts, lastErr)
}

func fetchOnce(ctx context.Context, url string, fetch FetchFunc) (string, error) {
	body, err := fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(body) == "" {
		return "", bulletin.Errorf(bulletin.EFETCH, "empty body for %s", url)
	}
	return body, nil
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
