package main_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bulletin.db")
	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	defer db.Close()

	_, err := sqlite.NewRecordService(db).CreateRecords(context.Background(), []*bulletin.Record{
		{Region: "중구", Category: "복지", Title: "무료 건강검진", SourceURL: "https://example.com/1"},
		{Region: "마포구", Category: "문화", Title: "구민 음악회", SourceURL: "https://example.com/2"},
	})
	require.NoError(t, err)
	return path
}

func TestRecordsCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists stored records", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newTestMain(), "records", "--db", seedDB(t))

		require.NoError(t, err)
		assert.Contains(t, stdout, "무료 건강검진")
		assert.Contains(t, stdout, "구민 음악회")
		assert.Contains(t, stdout, "https://example.com/2")
	})

	t.Run("filters by region", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newTestMain(), "records", "--db", seedDB(t), "--region", "마포구")

		require.NoError(t, err)
		assert.NotContains(t, stdout, "무료 건강검진")
		assert.Contains(t, stdout, "구민 음악회")
	})

	t.Run("deletes matching records", func(t *testing.T) {
		t.Parallel()

		path := seedDB(t)

		stdout, _, err := run(t, newTestMain(), "records", "--db", path, "--region", "중구", "--delete")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Deleted 1 records")

		stdout, _, err = run(t, newTestMain(), "records", "--db", path)
		require.NoError(t, err)
		assert.NotContains(t, stdout, "무료 건강검진")
	})

	t.Run("reports empty database", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newTestMain(), "records", "--db", filepath.Join(t.TempDir(), "empty.db"))

		require.NoError(t, err)
		assert.Contains(t, stdout, "No records found")
	})
}
