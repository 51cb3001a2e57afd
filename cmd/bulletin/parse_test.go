package main_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bulletin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func decodeRecords(t *testing.T, stdout string) []bulletin.Record {
	t.Helper()
	var records []bulletin.Record
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	return records
}

func TestParseCmd(t *testing.T) {
	t.Parallel()

	t.Run("extracts records from text lines", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, "notice.txt", "▶ 무료 건강검진\nㅇ 대상: 65세 이상 구민\nㅇ 문의: 보건소 02-3396-5000\n")

		stdout, stderr, err := run(t, newTestMain(), "parse", path, "--url", "https://example.com/a", "--region", "중구")

		require.NoError(t, err, stderr)
		records := decodeRecords(t, stdout)
		require.Len(t, records, 1)
		assert.Equal(t, "무료 건강검진", records[0].Title)
		assert.Equal(t, "65세 이상 구민", records[0].Target)
		assert.Equal(t, "중구", records[0].Region)
		assert.Equal(t, "https://example.com/a", records[0].SourceURL)
	})

	t.Run("titles text without markers with heading", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, "plain.txt", "대상: 구민 누구나\n장소: 구청 광장\n")

		stdout, _, err := run(t, newTestMain(), "parse", path, "--title", "벼룩시장")

		require.NoError(t, err)
		records := decodeRecords(t, stdout)
		require.Len(t, records, 1)
		assert.Equal(t, "벼룩시장", records[0].Title)
		assert.Equal(t, "구청 광장", records[0].Location)
	})

	t.Run("renders HTML with site profile", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, "page.html", checkupPage)

		stdout, stderr, err := run(t, newTestMain(), "parse", path, "--site", "junggu",
			"--url", "https://www.junggu.seoul.kr/content.do?cmsid=16539&mode=view&cid=1")

		require.NoError(t, err, stderr)
		records := decodeRecords(t, stdout)
		require.Len(t, records, 1)
		assert.Equal(t, "무료 건강검진", records[0].Title)
		assert.Equal(t, "중구", records[0].Region)
		assert.Equal(t, "복지", records[0].Category)
		assert.Contains(t, records[0].Contact, "02-3396-5000")
	})

	t.Run("prints empty array for empty input", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, "empty.txt", "\n\n")

		stdout, _, err := run(t, newTestMain(), "parse", path)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", stdout)
	})

	t.Run("returns error for unknown site", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, "page.html", checkupPage)

		_, _, err := run(t, newTestMain(), "parse", path, "--site", "nowhere")

		assert.Equal(t, bulletin.ENOTFOUND, bulletin.ErrorCode(err))
	})
}
