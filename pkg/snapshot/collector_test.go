package snapshot_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/goldenrecord/pkg/snapshot"
)

func TestCollector(t *testing.T) {
	t.Run("observations in chronological order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "2024-01-01", "scrape.csv"),
			"po_number,status\nX-1,Sent\n")
		writeFile(t, filepath.Join(dir, "2024-02-01", "scrape.csv"),
			"po_number,status\nX-1,Closed\n")

		files, err := snapshot.Locate(filepath.Join(dir, "**", "*.csv"))
		require.NoError(t, err)

		collector := snapshot.NewCollector(0)
		require.NoError(t, collector.Collect(context.Background(), files))

		obs := collector.Observations("X-1")
		require.Len(t, obs, 2)
		assert.Equal(t, "Sent", obs[0].Order.Status)
		assert.Equal(t, "Closed", obs[1].Order.Status)
		assert.True(t, obs[0].SnapshotDate.Before(obs[1].SnapshotDate))
	})

	t.Run("numbers kept in first-seen order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "2024-01-01", "scrape.csv"),
			"po_number\nB-2\nA-1\nC-3\n")
		writeFile(t, filepath.Join(dir, "2024-01-02", "scrape.csv"),
			"po_number\nA-1\nD-4\n")

		files, err := snapshot.Locate(filepath.Join(dir, "**", "*.csv"))
		require.NoError(t, err)

		collector := snapshot.NewCollector(0)
		require.NoError(t, collector.Collect(context.Background(), files))

		assert.Equal(t, []string{"B-2", "A-1", "C-3", "D-4"}, collector.Numbers())
	})

	t.Run("stats count every physical row", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "2024-01-01", "scrape.csv"),
			"po_number,description\nX-1,kept\n,empty number\nX-2,kept\n")

		files, err := snapshot.Locate(filepath.Join(dir, "**", "*.csv"))
		require.NoError(t, err)

		collector := snapshot.NewCollector(0)
		require.NoError(t, collector.Collect(context.Background(), files))

		stats := collector.Stats()
		assert.Equal(t, 1, stats.FilesProcessed)
		assert.Equal(t, 3, stats.RowsProcessed)
		assert.Equal(t, 1, stats.RowsSkipped)
		assert.Equal(t, 2, stats.RowsWithNumber())
		assert.Equal(t, 1, stats.SkippedByReason[snapshot.SkipEmptyNumber])
	})

	t.Run("header-only snapshot still counts as processed", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "2024-01-01", "scrape.csv"),
			"po_number,description\nX-1,kept\n")
		writeFile(t, filepath.Join(dir, "2024-01-02", "scrape.csv"),
			"po_number,description\n")

		files, err := snapshot.Locate(filepath.Join(dir, "**", "*.csv"))
		require.NoError(t, err)

		collector := snapshot.NewCollector(0)
		require.NoError(t, collector.Collect(context.Background(), files))

		stats := collector.Stats()
		assert.Equal(t, 2, stats.FilesProcessed)
		assert.Equal(t, 1, stats.RowsProcessed)
	})

	t.Run("parallel parse keeps serial order", func(t *testing.T) {
		dir := t.TempDir()
		// Enough files that a racy merge would scramble the order.
		dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
			"2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08"}
		for i, d := range dates {
			writeFile(t, filepath.Join(dir, d, "scrape.csv"),
				"po_number,status\nX-1,step-"+string(rune('a'+i))+"\n")
		}

		files, err := snapshot.Locate(filepath.Join(dir, "**", "*.csv"))
		require.NoError(t, err)

		collector := snapshot.NewCollector(4)
		require.NoError(t, collector.Collect(context.Background(), files))

		obs := collector.Observations("X-1")
		require.Len(t, obs, len(dates))
		for i := range obs {
			assert.Equal(t, "step-"+string(rune('a'+i)), obs[i].Order.Status)
			if i > 0 {
				assert.False(t, obs[i].SnapshotDate.Before(obs[i-1].SnapshotDate))
			}
		}
	})

	t.Run("cancelled context stops collection", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "2024-01-01", "scrape.csv"), "po_number\nX-1\n")

		files, err := snapshot.Locate(filepath.Join(dir, "**", "*.csv"))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		collector := snapshot.NewCollector(1)
		err = collector.Collect(ctx, files)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
