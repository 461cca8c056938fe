package goldenrecord

import (
	"time"

	"github.com/civicdata/goldenrecord/pkg/constants"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/reconcile"
	"github.com/civicdata/goldenrecord/pkg/validate"
)

// Option is a function that configures a goldenrecord client or run.
type Option func(*options) error

// options carries the full configuration for a pipeline run.
type options struct {
	dataset         string
	snapshots       string
	allowlistPath   string
	canonicalPath   string
	validationPath  string
	oracle          validate.CountFunc
	oracleTimeout   time.Duration
	policy          reconcile.Policy
	workers         int
	validation      bool
	refreshEnabled  bool
	refreshInterval time.Duration
}

func defaultOptions() *options {
	return &options{
		dataset:         constants.DefaultDatasetName,
		canonicalPath:   constants.DefaultCanonicalFilename,
		validationPath:  constants.DefaultValidationFilename,
		oracleTimeout:   constants.OracleTimeout,
		policy:          reconcile.LatestWins{},
		validation:      true,
		refreshInterval: constants.DefaultRefreshInterval,
	}
}

func (c *client) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c.options); err != nil {
			return err
		}
	}
	return nil
}

// WithDataset names the dataset for logs and reports.
func WithDataset(name string) Option {
	return func(o *options) error {
		o.dataset = name
		return nil
	}
}

// WithSnapshots sets the glob pattern for raw snapshot files. Required
// before any run.
func WithSnapshots(pattern string) Option {
	return func(o *options) error {
		o.snapshots = pattern
		return nil
	}
}

// WithAllowlist sets the recurring-number allowlist CSV path. A missing
// or unreadable file degrades to an empty allowlist at run time.
func WithAllowlist(path string) Option {
	return func(o *options) error {
		o.allowlistPath = path
		return nil
	}
}

// WithCanonicalPath sets where the canonical CSV is written.
func WithCanonicalPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{Field: "canonicalPath", Message: "path must not be empty"}
		}
		o.canonicalPath = path
		return nil
	}
}

// WithValidationPath sets where the validation record is written.
func WithValidationPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{Field: "validationPath", Message: "path must not be empty"}
		}
		o.validationPath = path
		return nil
	}
}

// WithOracle wires the live-count oracle. Nil leaves validation marked
// failed rather than disabling it; use WithoutValidation for that.
func WithOracle(oracle validate.CountFunc) Option {
	return func(o *options) error {
		o.oracle = oracle
		return nil
	}
}

// WithOracleTimeout bounds the oracle call.
func WithOracleTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return &errors.ValidationError{Field: "oracleTimeout", Value: timeout, Message: "timeout must be positive"}
		}
		o.oracleTimeout = timeout
		return nil
	}
}

// WithPolicy sets the keep/drop policy. The default is latest-wins.
func WithPolicy(policy reconcile.Policy) Option {
	return func(o *options) error {
		if policy == nil {
			return &errors.ValidationError{Field: "policy", Message: "policy must not be nil"}
		}
		o.policy = policy
		return nil
	}
}

// WithWorkers bounds concurrent snapshot parsing.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return &errors.ValidationError{Field: "workers", Value: n, Message: "worker count must not be negative"}
		}
		o.workers = n
		return nil
	}
}

// WithoutValidation skips the oracle comparison and the validation
// record entirely.
func WithoutValidation() Option {
	return func(o *options) error {
		o.validation = false
		return nil
	}
}

// WithAutoRefresh enables timer-driven re-runs when the client is created.
func WithAutoRefresh(enabled bool) Option {
	return func(o *options) error {
		o.refreshEnabled = enabled
		return nil
	}
}

// WithRefreshInterval sets how often auto-refresh re-runs the pipeline.
func WithRefreshInterval(interval time.Duration) Option {
	return func(o *options) error {
		if interval <= 0 {
			return &errors.ValidationError{Field: "refreshInterval", Value: interval, Message: "interval must be positive"}
		}
		o.refreshInterval = interval
		return nil
	}
}
