// Package reconcile collapses per-number observation lists into the
// canonical set. Non-allowlisted numbers keep exactly one observation;
// allowlisted numbers keep up to their allowed duplicate count. The
// engine is a pure function of its inputs — no file or network access —
// so the keep/drop decision is unit-testable in isolation.
package reconcile

import (
	"github.com/civicdata/goldenrecord/pkg/logging"
	"github.com/civicdata/goldenrecord/pkg/order"
	"github.com/civicdata/goldenrecord/pkg/recurring"
)

// Source supplies collected observations. Numbers must be stable across
// calls (the collector returns first-seen order); each number's
// observation list must be in snapshot-chronological order.
type Source interface {
	Numbers() []string
	Observations(number string) []order.Observation
}

// Reconciler applies a keep/drop policy across every collected number.
type Reconciler struct {
	policy    Policy
	allowlist *recurring.Allowlist
}

// New creates a reconciler. Defaults: LatestWins policy, empty allowlist.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		policy:    LatestWins{},
		allowlist: recurring.Empty(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile walks every number in the source's order and keeps the
// policy's selection. The output preserves number iteration order and,
// within a number, the observations' original relative order; sorting is
// the canonical sorter's job, not this one's.
func (r *Reconciler) Reconcile(src Source) *Result {
	result := &Result{Policy: r.policy.Name()}

	for _, number := range src.Numbers() {
		observations := src.Observations(number)
		if len(observations) == 0 {
			continue
		}

		allowed, listed := r.allowlist.Allowance(number)
		if listed {
			kept := r.policy.Keep(observations, allowed)
			result.Canonical = append(result.Canonical, kept...)
			result.Tally.DuplicatesKept += len(kept)
			result.Tally.DuplicatesSkipped += len(observations) - len(kept)
			if len(observations) > 1 {
				logging.Debug().
					Str("number", number).
					Int("observed", len(observations)).
					Int("kept", len(kept)).
					Msg("Allowlisted number retained multiple copies")
			}
			continue
		}

		kept := r.policy.Keep(observations, 1)
		result.Canonical = append(result.Canonical, kept...)
		result.Tally.UniquePOs++
		result.Tally.DuplicatesSkipped += len(observations) - len(kept)
	}

	return result
}
