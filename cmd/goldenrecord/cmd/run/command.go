// Package run provides the consolidation run command.
package run

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civicdata/goldenrecord"
	"github.com/civicdata/goldenrecord/internal/appcontext"
	"github.com/civicdata/goldenrecord/internal/cmd/globals"
	"github.com/civicdata/goldenrecord/internal/cmd/output"
	"github.com/civicdata/goldenrecord/internal/oracle"
	"github.com/civicdata/goldenrecord/pkg/manifest"
	"github.com/civicdata/goldenrecord/pkg/reconcile"
)

// NewCommand creates the run command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		snapshots      string
		allowlistPath  string
		canonicalPath  string
		validationPath string
		oracleURL      string
		policyName     string
		workers        int
		noValidate     bool
		manifestPath   string
	)

	cmd := &cobra.Command{
		Use:     "run",
		GroupID: "core",
		Short:   "Consolidate snapshots into the canonical dataset",
		Long: `Run executes the full consolidation pipeline: locate snapshot files,
collect purchase-order rows, reconcile duplicates, write the canonical
CSV, and validate the result against the live registry count.

With --manifest, runs the pipeline once per dataset described in a YAML
manifest file instead of using flags and configuration.`,
		Example: `  goldenrecord run --snapshots 'exports/**/*.csv'
  goldenrecord run --snapshots 'exports/**/*.csv' --allowlist recurring.csv
  goldenrecord run --manifest datasets.yaml
  goldenrecord run --policy first-seen --no-validate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			if manifestPath != "" {
				return runManifest(cmd.Context(), app, manifestPath, globalFlags)
			}

			// Start from configured options so flags override config.
			opts := app.RunOptions()
			if snapshots != "" {
				opts = append(opts, goldenrecord.WithSnapshots(snapshots))
			}
			if allowlistPath != "" {
				opts = append(opts, goldenrecord.WithAllowlist(allowlistPath))
			}
			if canonicalPath != "" {
				opts = append(opts, goldenrecord.WithCanonicalPath(canonicalPath))
			}
			if validationPath != "" {
				opts = append(opts, goldenrecord.WithValidationPath(validationPath))
			}
			if oracleURL != "" {
				opts = append(opts, goldenrecord.WithOracle(oracle.New(oracleURL).CountFunc()))
			}
			if policyName != "" {
				policy, ok := reconcile.PolicyByName(policyName)
				if !ok {
					return fmt.Errorf("unknown policy: %s (expected latest-wins or first-seen)", policyName)
				}
				opts = append(opts, goldenrecord.WithPolicy(policy))
			}
			if workers > 0 {
				opts = append(opts, goldenrecord.WithWorkers(workers))
			}
			if noValidate {
				opts = append(opts, goldenrecord.WithoutValidation())
			}

			result, err := goldenrecord.Run(cmd.Context(), opts...)
			if err != nil {
				return err
			}

			return output.FormatResult(result, globalFlags)
		},
	}

	cmd.Flags().StringVar(&snapshots, "snapshots", "",
		"Glob pattern matching snapshot files (supports **)")
	cmd.Flags().StringVar(&allowlistPath, "allowlist", "",
		"Path to the recurring-PO allowlist CSV")
	cmd.Flags().StringVar(&canonicalPath, "canonical", "",
		"Path for the canonical CSV output")
	cmd.Flags().StringVar(&validationPath, "validation", "",
		"Path for the validation record JSON")
	cmd.Flags().StringVar(&oracleURL, "oracle-url", "",
		"Live registry count endpoint")
	cmd.Flags().StringVar(&policyName, "policy", "",
		"Reconciliation policy: latest-wins or first-seen")
	cmd.Flags().IntVar(&workers, "workers", 0,
		"Number of parallel snapshot readers (0 = default)")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false,
		"Skip live-count validation")
	cmd.Flags().StringVar(&manifestPath, "manifest", "",
		"Run every dataset described in a YAML manifest")

	return cmd
}

// runManifest executes the pipeline once per manifest dataset.
// Datasets run sequentially; a failing dataset stops the run so partial
// results are never silently ignored.
func runManifest(ctx context.Context, app appcontext.Interface, path string, globalFlags *globals.Flags) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	for _, ds := range m.Datasets {
		app.Logger().Info().Str("dataset", ds.Name).Msg("Running dataset")

		result, err := goldenrecord.Run(ctx, datasetOptions(ds)...)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", ds.Name, err)
		}

		if err := output.FormatResult(result, globalFlags); err != nil {
			return err
		}
	}

	return nil
}

// datasetOptions translates a manifest dataset into pipeline options.
// Manifest validation already rejected unknown policy names.
func datasetOptions(ds manifest.Dataset) []goldenrecord.Option {
	opts := []goldenrecord.Option{
		goldenrecord.WithDataset(ds.Name),
		goldenrecord.WithSnapshots(ds.Snapshots),
	}
	if ds.Allowlist != "" {
		opts = append(opts, goldenrecord.WithAllowlist(ds.Allowlist))
	}
	if ds.Canonical != "" {
		opts = append(opts, goldenrecord.WithCanonicalPath(ds.Canonical))
	}
	if ds.Validation != "" {
		opts = append(opts, goldenrecord.WithValidationPath(ds.Validation))
	}
	if ds.OracleURL != "" {
		opts = append(opts, goldenrecord.WithOracle(oracle.New(ds.OracleURL).CountFunc()))
	} else {
		opts = append(opts, goldenrecord.WithoutValidation())
	}
	if policy, ok := reconcile.PolicyByName(ds.Policy); ok && ds.Policy != "" {
		opts = append(opts, goldenrecord.WithPolicy(policy))
	}
	return opts
}
