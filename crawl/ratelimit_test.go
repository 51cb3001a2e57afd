package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	jungguHost = "www.junggu.seoul.kr"
	liveHost   = "www.liveinkorea.kr"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	var _ bulletin.DomainLimiter = crawl.NewDomainLimiter(1)

	t.Run("first request to a host does not wait", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), jungguHost))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("second request to the same host waits", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), jungguHost))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), jungguHost))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("host names are case insensitive", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "WWW.JUNGGU.SEOUL.KR"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), jungguHost))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("other hosts are not delayed", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), jungguHost))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), liveHost))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns the context error when the wait is cut short", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), liveHost))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, liveHost))
	})

	t.Run("concurrent workers all get through", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(100)

		var g errgroup.Group
		for range 5 {
			g.Go(func() error {
				return limiter.Wait(context.Background(), liveHost)
			})
		}

		assert.NoError(t, g.Wait())
	})

	t.Run("non-positive rate disables limiting", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0)

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(context.Background(), jungguHost))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("disabled limiter still reports a canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, crawl.NewDomainLimiter(0).Wait(ctx, jungguHost), context.Canceled)
	})
}
