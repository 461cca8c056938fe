package reconcile

import "github.com/civicdata/goldenrecord/pkg/order"

// Tally is the reconciliation accounting. The identity it must satisfy:
// UniquePOs + DuplicatesKept == len(Canonical), and the number of rows
// that entered with a usable identifier == len(Canonical) + DuplicatesSkipped.
type Tally struct {
	// UniquePOs counts numbers reconciled outside the allowlist, each
	// contributing exactly one canonical row.
	UniquePOs int `json:"unique_pos" yaml:"unique_pos"`

	// DuplicatesKept counts canonical rows retained for allowlisted numbers.
	DuplicatesKept int `json:"duplicates_kept" yaml:"duplicates_kept"`

	// DuplicatesSkipped counts observations dropped as stale copies.
	DuplicatesSkipped int `json:"duplicates_skipped" yaml:"duplicates_skipped"`
}

// CanonicalRows returns the row count the tally implies.
func (t Tally) CanonicalRows() int {
	return t.UniquePOs + t.DuplicatesKept
}

// Result is the outcome of one reconciliation pass.
type Result struct {
	// Canonical holds the surviving observations, grouped by number in
	// the source's iteration order. Unsorted; the canonical sorter owns
	// the final order.
	Canonical []order.Observation `json:"canonical" yaml:"canonical"`

	// Tally is the keep/drop accounting.
	Tally Tally `json:"tally" yaml:"tally"`

	// Policy names the keep/drop policy that produced this result.
	Policy string `json:"policy" yaml:"policy"`
}
