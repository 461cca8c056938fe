// Package verify provides the canonical-vs-truth comparison command.
package verify

import (
	"github.com/spf13/cobra"

	"github.com/civicdata/goldenrecord/internal/appcontext"
	"github.com/civicdata/goldenrecord/internal/cmd/globals"
	"github.com/civicdata/goldenrecord/internal/cmd/output"
	"github.com/civicdata/goldenrecord/pkg/canonical"
	"github.com/civicdata/goldenrecord/pkg/differ"
	"github.com/civicdata/goldenrecord/pkg/errors"
)

// NewCommand creates the verify command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		canonicalPath string
		truthPath     string
	)

	cmd := &cobra.Command{
		Use:     "verify",
		GroupID: "core",
		Short:   "Compare the canonical dataset against a trusted export",
		Long: `Verify compares the canonical CSV against an independently produced
trusted export and reports the differences bucketed by kind: rows whose
status changed, rows only the canonical dataset has, and rows missing
from it. Recurring orders with multiple allowed rows are matched as a
multiset, so reordered history does not count as a difference.`,
		Example: `  goldenrecord verify --truth registry-export.csv
  goldenrecord verify --canonical out/canonical.csv --truth export.csv -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			if canonicalPath == "" {
				canonicalPath = app.CanonicalPath()
			}
			if truthPath == "" {
				return errors.NewValidationError("truth", "", "a trusted export path is required")
			}

			ours, err := canonical.Read(canonicalPath)
			if err != nil {
				return err
			}
			theirs, err := canonical.Read(truthPath)
			if err != nil {
				return err
			}

			report, err := differ.Compare(ours, theirs)
			if err != nil {
				return err
			}

			if err := output.FormatReport(report, globalFlags); err != nil {
				return err
			}

			if !report.Clean() {
				app.Logger().Warn().
					Int("status_changes", len(report.StatusChanges)).
					Int("truly_extra", len(report.TrulyExtra)).
					Int("missing", len(report.MissingFromCanonical)).
					Msg("Canonical dataset differs from trusted export")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&canonicalPath, "canonical", "",
		"Path to the canonical CSV")
	cmd.Flags().StringVar(&truthPath, "truth", "",
		"Path to the trusted export CSV to compare against")

	return cmd
}
