// Package differ explains discrepancies between the canonical dataset and
// an independently sourced ground-truth extract. It classifies every
// mismatch rather than auto-correcting anything: the output is an
// inspection report, not a repair.
package differ

import (
	"sort"

	"github.com/gohugoio/hashstructure"

	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/order"
)

// Compare classifies the differences between the canonical set and a
// ground-truth extract. Rows are matched by content hash over business
// fields (lineage metadata never reaches this package). Buckets:
//
//   - statusChange: number present on both sides but fields differ —
//     both versions surfaced for inspection.
//   - trulyExtra: canonical row whose content has no ground-truth
//     counterpart, including numbers ground truth lacks entirely.
//   - missingFromCanonical: ground-truth row with no canonical
//     counterpart.
func Compare(canonical, truth []order.Order) (*Report, error) {
	canonicalByNumber, err := groupByNumber(canonical)
	if err != nil {
		return nil, err
	}
	truthByNumber, err := groupByNumber(truth)
	if err != nil {
		return nil, err
	}

	report := &Report{}

	for number, ours := range canonicalByNumber {
		theirs, known := truthByNumber[number]
		if !known {
			for _, row := range ours {
				report.TrulyExtra = append(report.TrulyExtra, row.order)
			}
			continue
		}

		oursLeft, theirsLeft := matchHashes(ours, theirs)
		report.Matched += len(ours) - len(oursLeft)

		// Pair the unmatched remainders as changed versions of the same
		// number; overflow on either side falls into the absence buckets.
		pairs := min(len(oursLeft), len(theirsLeft))
		for i := 0; i < pairs; i++ {
			report.StatusChanges = append(report.StatusChanges, StatusChange{
				Number:    number,
				Canonical: oursLeft[i].order,
				Truth:     theirsLeft[i].order,
			})
		}
		for _, row := range oursLeft[pairs:] {
			report.TrulyExtra = append(report.TrulyExtra, row.order)
		}
		for _, row := range theirsLeft[pairs:] {
			report.MissingFromCanonical = append(report.MissingFromCanonical, row.order)
		}
	}

	for number, theirs := range truthByNumber {
		if _, known := canonicalByNumber[number]; known {
			continue
		}
		for _, row := range theirs {
			report.MissingFromCanonical = append(report.MissingFromCanonical, row.order)
		}
	}

	report.sort()
	return report, nil
}

// hashedOrder pairs a row with its content hash so multiset matching is
// a hash comparison, not a nine-field comparison.
type hashedOrder struct {
	order order.Order
	hash  uint64
}

func groupByNumber(orders []order.Order) (map[string][]hashedOrder, error) {
	grouped := make(map[string][]hashedOrder)
	for _, o := range orders {
		hash, err := hashstructure.Hash(o, nil)
		if err != nil {
			return nil, errors.NewValidationError("order", o.Number, "unhashable row: "+err.Error())
		}
		grouped[o.Number] = append(grouped[o.Number], hashedOrder{order: o, hash: hash})
	}
	return grouped, nil
}

// matchHashes removes multiset-equal rows from both sides and returns the
// unmatched remainders in their original relative order.
func matchHashes(ours, theirs []hashedOrder) (oursLeft, theirsLeft []hashedOrder) {
	remaining := make(map[uint64]int, len(theirs))
	for _, row := range theirs {
		remaining[row.hash]++
	}

	for _, row := range ours {
		if remaining[row.hash] > 0 {
			remaining[row.hash]--
			continue
		}
		oursLeft = append(oursLeft, row)
	}
	for _, row := range theirs {
		if remaining[row.hash] > 0 {
			remaining[row.hash]--
			theirsLeft = append(theirsLeft, row)
		}
	}
	return oursLeft, theirsLeft
}

// sortOrders orders a bucket by number then sent date for reproducible
// reports.
func sortOrders(orders []order.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].Number != orders[j].Number {
			return orders[i].Number < orders[j].Number
		}
		return orders[i].SentDate < orders[j].SentDate
	})
}
