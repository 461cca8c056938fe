// Package validate provides the standalone live-count validation command.
package validate

import (
	"github.com/spf13/cobra"

	"github.com/civicdata/goldenrecord/internal/appcontext"
	"github.com/civicdata/goldenrecord/internal/cmd/globals"
	"github.com/civicdata/goldenrecord/internal/cmd/output"
	"github.com/civicdata/goldenrecord/internal/oracle"
	"github.com/civicdata/goldenrecord/pkg/canonical"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/reconcile"
	"github.com/civicdata/goldenrecord/pkg/recurring"
	"github.com/civicdata/goldenrecord/pkg/validate"
)

// NewCommand creates the validate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		canonicalPath  string
		oracleURL      string
		validationPath string
	)

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Check the canonical dataset against the live registry count",
		Long: `Validate re-checks an existing canonical CSV against the registry's
live record count without re-running the consolidation pipeline. The
check is advisory: a gap is reported, never treated as a failure.

With --validation, the resulting record is also written to disk.`,
		Example: `  goldenrecord validate --oracle-url https://registry.example.gov/api/count
  goldenrecord validate --canonical out/canonical.csv --validation out/validation.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			if canonicalPath == "" {
				canonicalPath = app.CanonicalPath()
			}
			if oracleURL == "" {
				oracleURL = app.OracleURL()
			}
			if oracleURL == "" {
				return errors.NewValidationError("oracle-url", "", "a live count endpoint is required")
			}

			orders, err := canonical.Read(canonicalPath)
			if err != nil {
				return err
			}

			// Allowlist size is advisory context on the record; a missing
			// allowlist just reports zero.
			allowlistSize := 0
			if path := app.AllowlistPath(); path != "" {
				if list, err := recurring.Load(path); err == nil {
					allowlistSize = list.Size()
				}
			}

			validator := validate.New(oracle.New(oracleURL).CountFunc())
			record, err := validator.Validate(cmd.Context(), "", len(orders), reconcile.Tally{}, allowlistSize)
			if err != nil {
				app.Logger().Warn().Err(err).Msg("Live count unavailable")
			}

			if validationPath != "" {
				if err := validate.WriteRecord(validationPath, record); err != nil {
					return err
				}
			}

			return output.FormatRecord(record, globalFlags)
		},
	}

	cmd.Flags().StringVar(&canonicalPath, "canonical", "",
		"Path to the canonical CSV")
	cmd.Flags().StringVar(&oracleURL, "oracle-url", "",
		"Live registry count endpoint")
	cmd.Flags().StringVar(&validationPath, "validation", "",
		"Write the validation record to this path")

	return cmd
}
