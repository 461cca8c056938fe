package reconcile

import "github.com/civicdata/goldenrecord/pkg/recurring"

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithPolicy sets the keep/drop policy. Nil is ignored.
func WithPolicy(policy Policy) Option {
	return func(r *Reconciler) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithAllowlist sets the recurring-number allowlist. Nil is ignored.
func WithAllowlist(allowlist *recurring.Allowlist) Option {
	return func(r *Reconciler) {
		if allowlist != nil {
			r.allowlist = allowlist
		}
	}
}
