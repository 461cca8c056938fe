// Package canonical owns the final shape of the consolidated dataset:
// its total ordering, its fixed-column CSV serialization, and the atomic
// write that makes a run all-or-nothing.
package canonical

import (
	"sort"

	"github.com/civicdata/goldenrecord/pkg/order"
)

// Sort orders the canonical set in place: sent date ascending, rows
// without a parseable sent date after all dated rows ("latest unknown"),
// then number lexicographically, then snapshot date. The order is total,
// so identical inputs always serialize identically regardless of how the
// reconciler iterated.
func Sort(observations []order.Observation) {
	sort.SliceStable(observations, func(i, j int) bool {
		return Less(observations[i], observations[j])
	})
}

// Less is the canonical comparator.
func Less(a, b order.Observation) bool {
	dateA, okA := order.ParseSentDate(a.Order.SentDate)
	dateB, okB := order.ParseSentDate(b.Order.SentDate)

	switch {
	case okA && okB:
		if !dateA.Equal(dateB) {
			return dateA.Before(dateB)
		}
	case okA:
		return true
	case okB:
		return false
	}

	if a.Order.Number != b.Order.Number {
		return a.Order.Number < b.Order.Number
	}
	return a.SnapshotDate.Before(b.SnapshotDate)
}
