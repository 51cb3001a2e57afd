package crawl_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noticeURL = "https://www.junggu.seoul.kr/content.do?cmsid=16540&mode=view&cid=1"

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("returns body on first success", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		fetch := func(_ context.Context, _ string) (string, error) {
			calls.Add(1)
			return "<html>ok</html>", nil
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), noticeURL, fetch, nil, delays)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("retries after failure and logs each retry", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		fetch := func(_ context.Context, _ string) (string, error) {
			if calls.Add(1) < 3 {
				return "", errors.New("connection reset")
			}
			return "<html>ok</html>", nil
		}
		var logged []string
		logger := func(format string, _ ...any) {
			logged = append(logged, format)
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), noticeURL, fetch, logger, delays)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, int32(3), calls.Load())
		assert.Len(t, logged, 2)
	})

	t.Run("treats blank body as failure", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		fetch := func(_ context.Context, _ string) (string, error) {
			calls.Add(1)
			return "  \n", nil
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), noticeURL, fetch, nil, delays)

		require.Error(t, err)
		assert.Equal(t, bulletin.EFETCH, bulletin.ErrorCode(err))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("returns EFETCH after all attempts fail", func(t *testing.T) {
		t.Parallel()

		fetch := func(_ context.Context, _ string) (string, error) {
			return "", errors.New("timeout")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), noticeURL, fetch, nil, delays)

		require.Error(t, err)
		assert.Equal(t, bulletin.EFETCH, bulletin.ErrorCode(err))
		assert.Contains(t, err.Error(), "3 attempts failed")
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("does not retry invalid requests", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		fetch := func(_ context.Context, _ string) (string, error) {
			calls.Add(1)
			return "", bulletin.Errorf(bulletin.EINVALID, "unsupported scheme")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), noticeURL, fetch, nil, delays)

		assert.Equal(t, bulletin.EINVALID, bulletin.ErrorCode(err))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("single attempt when there are no delays", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		fetch := func(_ context.Context, _ string) (string, error) {
			calls.Add(1)
			return "", errors.New("503")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), noticeURL, fetch, nil, nil)

		assert.Equal(t, bulletin.EFETCH, bulletin.ErrorCode(err))
		assert.Contains(t, err.Error(), "1 attempts failed")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("boom")
		}

		_, err := crawl.FetchWithRetryDelays(ctx, noticeURL, fetch, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
