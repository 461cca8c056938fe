// Package snapshots provides the snapshot discovery command.
package snapshots

import (
	"github.com/spf13/cobra"

	"github.com/civicdata/goldenrecord/internal/appcontext"
	"github.com/civicdata/goldenrecord/internal/cmd/globals"
	"github.com/civicdata/goldenrecord/internal/cmd/output"
	"github.com/civicdata/goldenrecord/pkg/snapshot"
)

// NewCommand creates the snapshots command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:     "snapshots",
		GroupID: "core",
		Short:   "List snapshot files matched by the configured pattern",
		Long: `Snapshots lists the files the configured glob pattern matches, in the
chronological order the pipeline would process them. Each file is shown
with the snapshot date derived from its path (or its modification time
when the path carries no date).`,
		Example: `  goldenrecord snapshots
  goldenrecord snapshots --snapshots 'exports/**/*.csv'
  goldenrecord snapshots -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			if pattern == "" {
				pattern = app.Snapshots()
			}

			files, err := snapshot.Locate(pattern)
			if err != nil {
				return err
			}

			return output.FormatFiles(files, globalFlags)
		},
	}

	cmd.Flags().StringVar(&pattern, "snapshots", "",
		"Glob pattern matching snapshot files (supports **)")

	return cmd
}
