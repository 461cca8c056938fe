package globals_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/goldenrecord/internal/cmd/globals"
)

func TestAddFlags(t *testing.T) {
	t.Run("registered flags bind to the returned struct", func(t *testing.T) {
		root := &cobra.Command{Use: "root", RunE: func(*cobra.Command, []string) error { return nil }}
		flags := globals.AddFlags(root)

		root.SetArgs([]string{"-o", "yaml", "-q", "--no-color"})
		require.NoError(t, root.Execute())

		assert.Equal(t, "yaml", flags.Output)
		assert.True(t, flags.Quiet)
		assert.False(t, flags.Verbose)
		assert.True(t, flags.NoColor)
	})

	t.Run("subcommands see the flags through Parse", func(t *testing.T) {
		root := &cobra.Command{Use: "root"}
		globals.AddFlags(root)

		var parsed *globals.Flags
		child := &cobra.Command{
			Use: "child",
			RunE: func(cmd *cobra.Command, _ []string) error {
				var err error
				parsed, err = globals.Parse(cmd)
				return err
			},
		}
		root.AddCommand(child)

		root.SetArgs([]string{"child", "--output", "json", "-v"})
		require.NoError(t, root.Execute())

		require.NotNil(t, parsed)
		assert.Equal(t, "json", parsed.Output)
		assert.True(t, parsed.Verbose)
		assert.False(t, parsed.Quiet)
	})
}
