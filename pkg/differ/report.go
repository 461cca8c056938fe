package differ

import (
	"sort"

	"github.com/civicdata/goldenrecord/pkg/order"
)

// StatusChange is a number present on both sides whose fields disagree.
// Both versions are carried so an operator can see what moved — usually
// the status column, occasionally a corrected total.
type StatusChange struct {
	Number    string      `json:"po_number" yaml:"po_number"`
	Canonical order.Order `json:"canonical" yaml:"canonical"`
	Truth     order.Order `json:"truth" yaml:"truth"`
}

// Report is the classified comparison between the canonical set and a
// ground-truth extract.
type Report struct {
	Matched              int            `json:"matched" yaml:"matched"`
	StatusChanges        []StatusChange `json:"status_changes,omitempty" yaml:"status_changes,omitempty"`
	TrulyExtra           []order.Order  `json:"truly_extra,omitempty" yaml:"truly_extra,omitempty"`
	MissingFromCanonical []order.Order  `json:"missing_from_canonical,omitempty" yaml:"missing_from_canonical,omitempty"`
}

// Counts summarizes the report for the terminal and for logs.
type Counts struct {
	Matched              int `json:"matched" yaml:"matched"`
	StatusChanges        int `json:"status_changes" yaml:"status_changes"`
	TrulyExtra           int `json:"truly_extra" yaml:"truly_extra"`
	MissingFromCanonical int `json:"missing_from_canonical" yaml:"missing_from_canonical"`
}

// Counts returns per-category totals.
func (r *Report) Counts() Counts {
	return Counts{
		Matched:              r.Matched,
		StatusChanges:        len(r.StatusChanges),
		TrulyExtra:           len(r.TrulyExtra),
		MissingFromCanonical: len(r.MissingFromCanonical),
	}
}

// Clean reports whether the two sides agreed exactly.
func (r *Report) Clean() bool {
	return len(r.StatusChanges) == 0 && len(r.TrulyExtra) == 0 && len(r.MissingFromCanonical) == 0
}

// sort fixes every bucket's order so reports are reproducible across
// runs regardless of map iteration.
func (r *Report) sort() {
	sort.SliceStable(r.StatusChanges, func(i, j int) bool {
		return r.StatusChanges[i].Number < r.StatusChanges[j].Number
	})
	sortOrders(r.TrulyExtra)
	sortOrders(r.MissingFromCanonical)
}
