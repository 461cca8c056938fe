// Package validate cross-checks the canonical row count against the
// registry's live count. The oracle answers one question — how many
// purchase orders exist right now — and the validator quantifies the gap
// between that and what the scraper captured. Validation is advisory: it
// never fails a run, it only records the discrepancy.
package validate

import (
	"github.com/agentstation/utc"
)

// Record is the persisted outcome of one validation attempt. A failed
// oracle call still writes a record, marked failed with the error text,
// so the audit trail shows the attempt rather than silence.
type Record struct {
	RunID              string   `json:"run_id"`
	Timestamp          utc.Time `json:"timestamp"`
	OracleCount        int      `json:"oracle_count"`
	CanonicalCount     int      `json:"canonical_count"`
	Difference         int      `json:"difference"`
	PercentageCaptured float64  `json:"percentage_captured"`
	AllowlistSize      int      `json:"allowlist_size"`
	DuplicatesKept     int      `json:"duplicates_kept"`
	DuplicatesSkipped  int      `json:"duplicates_skipped"`
	Failed             bool     `json:"failed"`
	Error              string   `json:"error,omitempty"`
}

// Captured reports whether the comparison ran and how much of the live
// registry the canonical set covers.
func (r *Record) Captured() (float64, bool) {
	if r == nil || r.Failed {
		return 0, false
	}
	return r.PercentageCaptured, true
}
