package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements bulletin.Converter at compile time.
var _ bulletin.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		text, err := htmltomarkdown.NewConverter().Convert(`<p>ㅇ 대상 : 중구 거주 외국인</p>`)

		require.NoError(t, err)
		assert.Equal(t, "ㅇ 대상 : 중구 거주 외국인", text)
	})

	t.Run("strips heading markers", func(t *testing.T) {
		t.Parallel()

		text, err := htmltomarkdown.NewConverter().Convert(`<h3>외국인 건강검진 지원</h3><p>본문</p>`)

		require.NoError(t, err)
		assert.Contains(t, text, "외국인 건강검진 지원")
		assert.NotContains(t, text, "#")
	})

	t.Run("strips emphasis", func(t *testing.T) {
		t.Parallel()

		text, err := htmltomarkdown.NewConverter().Convert(`<p><strong>▶ 주민 교육</strong></p>`)

		require.NoError(t, err)
		assert.Equal(t, "▶ 주민 교육", text)
	})

	t.Run("keeps link targets", func(t *testing.T) {
		t.Parallel()

		text, err := htmltomarkdown.NewConverter().Convert(`<p>신청 : <a href="https://example.com/apply">신청하기</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, text, "신청하기 (https://example.com/apply)")
	})

	t.Run("keeps list markers", func(t *testing.T) {
		t.Parallel()

		text, err := htmltomarkdown.NewConverter().Convert(`<ul><li>온라인 접수</li><li>방문 접수</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, text, "- 온라인 접수")
		assert.Contains(t, text, "- 방문 접수")
	})

	t.Run("flattens tables to rows", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>구분</th><th>내용</th></tr></thead><tbody><tr><td>대상</td><td>주민</td></tr></tbody></table>`

		text, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, text, "대상 주민")
		assert.NotContains(t, text, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		assert.Equal(t, bulletin.EINVALID, bulletin.ErrorCode(err))
	})
}
