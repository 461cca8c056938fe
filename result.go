package goldenrecord

import (
	"github.com/agentstation/utc"

	"github.com/civicdata/goldenrecord/pkg/order"
	"github.com/civicdata/goldenrecord/pkg/reconcile"
	"github.com/civicdata/goldenrecord/pkg/snapshot"
	"github.com/civicdata/goldenrecord/pkg/validate"
)

// Result is the outcome of one pipeline run: what was read, what was
// kept, where it was written, and how the canonical count compares to
// the oracle's if validation ran.
type Result struct {
	RunID      string   `json:"run_id" yaml:"run_id"`
	Dataset    string   `json:"dataset" yaml:"dataset"`
	StartedAt  utc.Time `json:"started_at" yaml:"started_at"`
	FinishedAt utc.Time `json:"finished_at" yaml:"finished_at"`

	Stats snapshot.Stats  `json:"stats" yaml:"stats"`
	Tally reconcile.Tally `json:"tally" yaml:"tally"`

	CanonicalRows  int    `json:"canonical_rows" yaml:"canonical_rows"`
	CanonicalPath  string `json:"canonical_path" yaml:"canonical_path"`
	ValidationPath string `json:"validation_path,omitempty" yaml:"validation_path,omitempty"`

	// Validation is nil when validation was disabled for the run.
	Validation *validate.Record `json:"validation,omitempty" yaml:"validation,omitempty"`

	// AllowlistSize is how many recurring numbers were loaded.
	AllowlistSize int `json:"allowlist_size" yaml:"allowlist_size"`

	// Canonical is the sorted canonical set. Excluded from serialized
	// results: the canonical CSV is the durable form of this data.
	Canonical []order.Observation `json:"-" yaml:"-"`
}

// Duration returns how long the run took.
func (r *Result) Duration() string {
	return r.FinishedAt.Sub(r.StartedAt).String()
}
