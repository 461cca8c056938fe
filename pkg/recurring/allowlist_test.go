package recurring_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/goldenrecord/pkg/recurring"
)

func TestParse(t *testing.T) {
	t.Run("registry column names", func(t *testing.T) {
		list, err := recurring.Parse(strings.NewReader(
			"identifier,Duplicate Count\nY-9,2\nZ-4,3\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, list.Size())
		count, ok := list.Allowance("Y-9")
		assert.True(t, ok)
		assert.Equal(t, 2, count)
	})

	t.Run("snake case headers", func(t *testing.T) {
		list, err := recurring.Parse(strings.NewReader(
			"po_number,duplicate_count\nY-9,2\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, list.Size())
	})

	t.Run("non-positive and unparsable counts dropped", func(t *testing.T) {
		list, err := recurring.Parse(strings.NewReader(
			"identifier,Duplicate Count\nA-1,0\nB-2,-3\nC-3,many\nD-4,2\n"))
		require.NoError(t, err)

		assert.Equal(t, 1, list.Size())
		_, ok := list.Allowance("A-1")
		assert.False(t, ok)
		_, ok = list.Allowance("D-4")
		assert.True(t, ok)
	})

	t.Run("missing required columns", func(t *testing.T) {
		_, err := recurring.Parse(strings.NewReader("name,value\nY-9,2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate-count columns are required")
	})

	t.Run("empty input yields empty list", func(t *testing.T) {
		list, err := recurring.Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, list.Size())
	})

	t.Run("entries sorted by number", func(t *testing.T) {
		list, err := recurring.Parse(strings.NewReader(
			"identifier,Duplicate Count\nZ-9,1\nA-1,2\nM-5,3\n"))
		require.NoError(t, err)

		entries := list.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "A-1", entries[0].Number)
		assert.Equal(t, "M-5", entries[1].Number)
		assert.Equal(t, "Z-9", entries[2].Number)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns advisory error", func(t *testing.T) {
		list, err := recurring.Load(filepath.Join(t.TempDir(), "absent.csv"))
		assert.Nil(t, list)
		assert.Error(t, err)
	})
}

func TestEmptyAllowlist(t *testing.T) {
	list := recurring.Empty()
	assert.Equal(t, 0, list.Size())
	_, ok := list.Allowance("anything")
	assert.False(t, ok)

	var nilList *recurring.Allowlist
	assert.Equal(t, 0, nilList.Size())
	_, ok = nilList.Allowance("anything")
	assert.False(t, ok)
}
