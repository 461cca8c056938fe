package goldenrecord

import (
	"context"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/civicdata/goldenrecord/pkg/canonical"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/logging"
	"github.com/civicdata/goldenrecord/pkg/reconcile"
	"github.com/civicdata/goldenrecord/pkg/recurring"
	"github.com/civicdata/goldenrecord/pkg/snapshot"
	"github.com/civicdata/goldenrecord/pkg/validate"
)

// Run executes the consolidation pipeline once: locate snapshots, collect
// observations, reconcile against the allowlist, sort, write the
// canonical file, then validate against the oracle. One-shot counterpart
// to Client for callers that keep no state between runs.
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return run(ctx, o)
}

// run is the pipeline. Stage order matters: the canonical file must be
// durable before the oracle is attempted, and nothing after the locate
// stage is allowed to abort the run.
func run(ctx context.Context, o *options) (*Result, error) {
	if o.snapshots == "" {
		return nil, &errors.ValidationError{Field: "snapshots", Message: "snapshot pattern is required"}
	}

	result := &Result{
		RunID:         uuid.NewString(),
		Dataset:       o.dataset,
		StartedAt:     utc.Now(),
		CanonicalPath: o.canonicalPath,
	}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.FromContext(ctx)

	// Locate. A pattern matching nothing is the one fatal error: there
	// is nothing to reconcile.
	files, err := snapshot.Locate(o.snapshots)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("dataset", o.dataset).
		Int("files", len(files)).
		Msg("Located snapshot files")

	// Allowlist. Missing or malformed degrades to empty: every number
	// becomes non-exceptional.
	allowlist := recurring.Empty()
	if o.allowlistPath != "" {
		loaded, err := recurring.Load(o.allowlistPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", o.allowlistPath).
				Msg("Allowlist unavailable; treating every number as non-recurring")
		} else {
			allowlist = loaded
			logger.Info().Int("numbers", allowlist.Size()).Msg("Loaded recurring-number allowlist")
		}
	}
	result.AllowlistSize = allowlist.Size()

	// Collect.
	collector := snapshot.NewCollector(o.workers)
	if err := collector.Collect(ctx, files); err != nil {
		return nil, err
	}
	result.Stats = collector.Stats()

	// Reconcile.
	engine := reconcile.New(
		reconcile.WithPolicy(o.policy),
		reconcile.WithAllowlist(allowlist),
	)
	reconciled := engine.Reconcile(collector)
	result.Tally = reconciled.Tally
	result.Canonical = reconciled.Canonical
	result.CanonicalRows = len(reconciled.Canonical)

	// Sort and write. The write is atomic; a cancelled run leaves either
	// the previous canonical file or the new one, never a partial file.
	canonical.Sort(result.Canonical)
	if err := canonical.Write(o.canonicalPath, result.Canonical); err != nil {
		return nil, err
	}
	logger.Info().
		Str("path", o.canonicalPath).
		Int("rows", result.CanonicalRows).
		Int("unique", result.Tally.UniquePOs).
		Int("duplicates_kept", result.Tally.DuplicatesKept).
		Int("duplicates_skipped", result.Tally.DuplicatesSkipped).
		Msg("Wrote canonical dataset")

	// Validate. Advisory only: the canonical file is already durable and
	// an unreachable oracle must not fail the run.
	if o.validation {
		result.ValidationPath = o.validationPath
		validator := validate.New(o.oracle, validate.WithTimeout(o.oracleTimeout))
		record, err := validator.Validate(ctx, result.RunID, result.CanonicalRows, result.Tally, allowlist.Size())
		if err != nil {
			logger.Warn().Err(err).Msg("Validation degraded; canonical output unaffected")
		}
		result.Validation = record
		if err := validate.WriteRecord(o.validationPath, record); err != nil {
			logger.Warn().Err(err).Str("path", o.validationPath).Msg("Could not write validation record")
		}
	}

	result.FinishedAt = utc.Now()
	logger.Info().
		Str("duration", result.Duration()).
		Msg("Run complete")
	return result, nil
}
