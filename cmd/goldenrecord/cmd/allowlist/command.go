// Package allowlist provides the recurring-PO allowlist inspection command.
package allowlist

import (
	"github.com/spf13/cobra"

	"github.com/civicdata/goldenrecord/internal/appcontext"
	"github.com/civicdata/goldenrecord/internal/cmd/globals"
	"github.com/civicdata/goldenrecord/internal/cmd/output"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/recurring"
)

// NewCommand creates the allowlist command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:     "allowlist",
		GroupID: "management",
		Short:   "Show the recurring purchase-order allowlist",
		Long: `Allowlist shows the PO numbers exempt from duplicate collapsing and the
number of historical rows each one is allowed to keep in the canonical
dataset.`,
		Example: `  goldenrecord allowlist
  goldenrecord allowlist --allowlist recurring.csv -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			if path == "" {
				path = app.AllowlistPath()
			}
			if path == "" {
				return errors.NewValidationError("allowlist", "", "no allowlist path configured")
			}

			list, err := recurring.Load(path)
			if err != nil {
				return err
			}

			return output.FormatAllowlist(list.Entries(), globalFlags)
		},
	}

	cmd.Flags().StringVar(&path, "allowlist", "",
		"Path to the recurring-PO allowlist CSV")

	return cmd
}
