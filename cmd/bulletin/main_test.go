package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/bulletin"
	main "github.com/fwojciec/bulletin/cmd/bulletin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main that neither sleeps between retries nor rate
// limits requests.
func newTestMain() *main.Main {
	m := main.NewMain()
	m.RetryDelays = []time.Duration{}
	m.RequestsPerSecond = 0
	return m
}

func run(t *testing.T, m *main.Main, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bulletin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newTestMain())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout, "crawl")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newTestMain(), "--help")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Crawl sites and save their records")
		assert.Contains(t, stdout, "records")
	})

	t.Run("rejects invalid config file", func(t *testing.T) {
		t.Parallel()

		cfg := writeConfig(t, "classifier: llm\n")

		_, stderr, err := run(t, newTestMain(), "--config", cfg, "sites")

		require.Error(t, err)
		assert.Equal(t, bulletin.EINVALID, bulletin.ErrorCode(err))
		assert.Contains(t, stderr, "unknown classifier")
	})
}

func TestSitesCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists built-in sites", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newTestMain(), "sites")

		require.NoError(t, err)
		assert.Contains(t, stdout, "junggu ")
		assert.Contains(t, stdout, "junggu-policy")
		assert.Contains(t, stdout, "junggu-culture")
		assert.Contains(t, stdout, "liveinkorea")
		assert.Contains(t, stdout, "25 lists")
		assert.Contains(t, stdout, "11 pages")
	})

	t.Run("includes sites from config file", func(t *testing.T) {
		t.Parallel()

		cfg := writeConfig(t, `
sites:
  - name: mapo
    region: 마포구
    details: ["https://www.mapo.go.kr/notice/1"]
`)

		stdout, _, err := run(t, newTestMain(), "--config", cfg, "sites")

		require.NoError(t, err)
		assert.Contains(t, stdout, "mapo")
		assert.Contains(t, stdout, "마포구")
	})
}

func TestDefaultSites(t *testing.T) {
	t.Parallel()

	sites := main.DefaultSites()

	require.Len(t, sites, 4)
	for _, s := range sites {
		assert.NoError(t, s.Validate(), s.Name)
	}

	live := sites[3]
	require.Len(t, live.Lists, 25)
	assert.Equal(t, "종로구", live.Lists[0].Region)
	assert.Contains(t, live.Lists[0].URL, "area_detail=D001")
	assert.Equal(t, "강동구", live.Lists[24].Region)
	for _, l := range live.Lists {
		assert.NotContains(t, l.URL, "D023")
	}
}
