package goquery_test

import (
	"testing"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves matching links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<ul class="board">
	<li><a href="content.do?cmsid=16539&mode=view&cid=2">두번째</a></li>
	<li><a href="/content.do?cmsid=16539&mode=view&cid=1">첫번째</a></li>
	<li><a href="content.do?cmsid=16539&page=2">다음 페이지</a></li>
</ul>
</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html,
			"https://www.junggu.seoul.kr/content.do?cmsid=16539",
			"a[href*='mode=view'][href*='cid=']")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://www.junggu.seoul.kr/content.do?cmsid=16539&mode=view&cid=2",
			"https://www.junggu.seoul.kr/content.do?cmsid=16539&mode=view&cid=1",
		}, links)
	})

	t.Run("deduplicates ignoring fragments", func(t *testing.T) {
		t.Parallel()

		html := `<a href="view.do?id=1">a</a><a href="view.do?id=1#top">b</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/list.do", "a")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/view.do?id=1"}, links)
	})

	t.Run("skips external and non-http links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://other.com/view.do">x</a>
<a href="javascript:void(0)">y</a>
<a href="mailto:a@example.com">z</a>
<a href="/view.do?id=3">ok</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/list.do", "a")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/view.do?id=3"}, links)
	})

	t.Run("rejects empty selector", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkExtractor().ExtractLinks("<a href='/x'>x</a>", "https://example.com", "")

		assert.Equal(t, bulletin.EINVALID, bulletin.ErrorCode(err))
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkExtractor().ExtractLinks("", "://bad", "a")

		assert.Equal(t, bulletin.EINVALID, bulletin.ErrorCode(err))
	})
}
