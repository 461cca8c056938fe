package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/goldenrecord/internal/cmd/output"
)

func TestParseFormat(t *testing.T) {
	t.Run("accepts every supported format", func(t *testing.T) {
		for _, name := range []string{"table", "json", "yaml", "wide", "csv", ""} {
			format, err := output.ParseFormat(name)
			require.NoError(t, err, "format %q", name)
			assert.Equal(t, output.Format(name), format)
		}
	})

	t.Run("is case insensitive", func(t *testing.T) {
		format, err := output.ParseFormat("JSON")
		require.NoError(t, err)
		assert.Equal(t, output.FormatJSON, format)
	})

	t.Run("rejects unsupported formats", func(t *testing.T) {
		for _, name := range []string{"text", "markdown", "xml"} {
			_, err := output.ParseFormat(name)
			assert.Error(t, err, "format %q", name)
		}
	})
}
