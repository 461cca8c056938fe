package reconcile

import "github.com/civicdata/goldenrecord/pkg/order"

// Policy decides which of a number's observations survive reconciliation.
// The keep/drop rule is the one genuinely contested decision in this
// system, so it sits behind an interface: swapping the default is a
// visible one-line change, not a rewrite.
type Policy interface {
	// Name returns the policy name for logs and reports.
	Name() string

	// Keep returns the observations to retain, given how many concurrent
	// copies of the number are allowed (1 for non-allowlisted numbers).
	// The returned slice preserves the input's relative order. len(L) < allowed
	// keeps everything; never pad, never error.
	Keep(observations []order.Observation, allowed int) []order.Observation
}

// LatestWins keeps the most recent allowed observations. This is the
// default: the registry updates a purchase order's fields in place across
// its life (Sent, Partial, Closed), so later re-scrapes capture the
// current truth and older copies are stale.
type LatestWins struct{}

// Name returns the policy name.
func (LatestWins) Name() string { return "latest-wins" }

// Keep returns the last allowed observations in original relative order —
// a suffix, not a re-sort, so most-recent-N semantics cost nothing.
func (LatestWins) Keep(observations []order.Observation, allowed int) []order.Observation {
	if allowed <= 0 {
		allowed = 1
	}
	if len(observations) <= allowed {
		return observations
	}
	return observations[len(observations)-allowed:]
}

// FirstSeen keeps the earliest allowed observations. Documented
// alternative to LatestWins; reversing the tie-break silently changes
// historical results, so the swap must be deliberate.
type FirstSeen struct{}

// Name returns the policy name.
func (FirstSeen) Name() string { return "first-seen" }

// Keep returns the first allowed observations in original relative order.
func (FirstSeen) Keep(observations []order.Observation, allowed int) []order.Observation {
	if allowed <= 0 {
		allowed = 1
	}
	if len(observations) <= allowed {
		return observations
	}
	return observations[:allowed]
}

// PolicyByName resolves a configured policy name, defaulting to
// LatestWins for the empty string. Unknown names report false.
func PolicyByName(name string) (Policy, bool) {
	switch name {
	case "", "latest-wins":
		return LatestWins{}, true
	case "first-seen":
		return FirstSeen{}, true
	default:
		return nil, false
	}
}
