package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/snapshot"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocate(t *testing.T) {
	t.Run("sorts by path-embedded date", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "raw", "2024", "02", "01", "scrape.csv"), "po_number\n")
		writeFile(t, filepath.Join(dir, "raw", "2024", "01", "15", "scrape.csv"), "po_number\n")
		writeFile(t, filepath.Join(dir, "raw", "2023", "12", "31", "scrape.csv"), "po_number\n")

		files, err := snapshot.Locate(filepath.Join(dir, "raw", "**", "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 3)

		assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), files[0].Date)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), files[1].Date)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), files[2].Date)
	})

	t.Run("accepts dash and hive-style dates", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "scrape-2024-03-05.csv"), "po_number\n")
		writeFile(t, filepath.Join(dir, "date=2024-03-04", "scrape.csv"), "po_number\n")

		files, err := snapshot.Locate(filepath.Join(dir, "**", "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), files[0].Date)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), files[1].Date)
	})

	t.Run("falls back to modification time", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "scrape.csv")
		writeFile(t, path, "po_number\n")
		stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, os.Chtimes(path, stamp, stamp))

		files, err := snapshot.Locate(filepath.Join(dir, "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.True(t, files[0].Date.Equal(stamp))
	})

	t.Run("zero matches is fatal", func(t *testing.T) {
		dir := t.TempDir()

		files, err := snapshot.Locate(filepath.Join(dir, "nothing", "*.csv"))
		assert.Nil(t, files)
		require.Error(t, err)
		assert.True(t, errors.IsNoSnapshots(err))
		assert.Contains(t, err.Error(), "no snapshot files match")
	})

	t.Run("breaks date ties by path", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "2024-01-01", "b.csv"), "po_number\n")
		writeFile(t, filepath.Join(dir, "2024-01-01", "a.csv"), "po_number\n")

		files, err := snapshot.Locate(filepath.Join(dir, "**", "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "a.csv", filepath.Base(files[0].Path))
		assert.Equal(t, "b.csv", filepath.Base(files[1].Path))
	})
}
