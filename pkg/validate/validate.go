package validate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/civicdata/goldenrecord/pkg/constants"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/logging"
	"github.com/civicdata/goldenrecord/pkg/reconcile"
)

// CountFunc is the oracle contract: no arguments beyond the context,
// returns the live total or an error. Production wires an HTTP client;
// tests pass closures.
type CountFunc func(ctx context.Context) (int, error)

// Validator compares the canonical row count against the oracle's.
type Validator struct {
	oracle  CountFunc
	timeout time.Duration
}

// New creates a validator around an oracle.
func New(oracle CountFunc, opts ...Option) *Validator {
	v := &Validator{
		oracle:  oracle,
		timeout: constants.OracleTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate calls the oracle once under the configured timeout and builds
// a Record from the comparison. The returned error is advisory — the
// record itself is always usable, marked failed when the oracle was
// unreachable or answered nonsense. Callers must have made the canonical
// file durable before calling; validation never blocks that output.
func (v *Validator) Validate(ctx context.Context, runID string, canonicalCount int, tally reconcile.Tally, allowlistSize int) (*Record, error) {
	if runID == "" {
		runID = uuid.NewString()
	}
	record := &Record{
		RunID:             runID,
		Timestamp:         utc.Now(),
		CanonicalCount:    canonicalCount,
		AllowlistSize:     allowlistSize,
		DuplicatesKept:    tally.DuplicatesKept,
		DuplicatesSkipped: tally.DuplicatesSkipped,
	}

	if v.oracle == nil {
		record.Failed = true
		record.Error = "no oracle configured"
		return record, nil
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	count, err := v.oracle(ctx)
	if err != nil {
		record.Failed = true
		record.Error = err.Error()
		logging.Warn().Err(err).Msg("Live-count oracle failed; validation skipped")
		return record, errors.WrapOracle("live-count", 0, err)
	}

	record.OracleCount = count
	record.Difference = count - canonicalCount
	if count > 0 {
		record.PercentageCaptured = float64(canonicalCount) / float64(count)
	}
	return record, nil
}

// WriteRecord persists a validation record as JSON, atomically, next to
// the canonical output.
func WriteRecord(path string, record *Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.WrapIO("write", path, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "validation_*.json")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// ReadRecord loads a previously written validation record.
func ReadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &record, nil
}
