// Package goldenrecord consolidates repeatedly re-scraped snapshots of a
// public purchase-order registry into one canonical, deduplicated dataset.
// Purchase-order numbers the issuing system legitimately reuses keep their
// multiple copies through a recurring-number allowlist; everything else
// collapses to its most recent scrape. The resulting row count is
// cross-checked against an independent live count and the gap is recorded.
//
// The package offers two entry points:
//
//	// One-shot: run the pipeline and get the result.
//	result, err := goldenrecord.Run(ctx,
//	    goldenrecord.WithSnapshots("raw/**/*.csv"),
//	    goldenrecord.WithAllowlist("config/recurring.csv"),
//	)
//
//	// Long-lived: retain the dataset, refresh on a timer, fire hooks.
//	gr, err := goldenrecord.New(
//	    goldenrecord.WithSnapshots("raw/**/*.csv"),
//	    goldenrecord.WithRefreshInterval(time.Hour),
//	)
//	gr.OnOrderUpdated(func(old, new order.Order) {
//	    log.Printf("%s: %s -> %s", new.Number, old.Status, new.Status)
//	})
package goldenrecord

import (
	"context"
	"sync"
	"time"

	"github.com/civicdata/goldenrecord/pkg/order"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages a retained canonical dataset with on-demand runs,
// timer-driven refresh, and change hooks.
type Client interface {
	// Runner executes the consolidation pipeline
	Runner

	// Datasetter provides copy-on-read access to the retained dataset
	Datasetter

	// AutoRefresher provides access to automatic refresh controls
	AutoRefresher

	// Hooks provides access to event callback registration
	Hooks
}

// Runner executes the consolidation pipeline.
type Runner interface {
	// Run executes one pipeline pass and retains the resulting dataset
	Run(ctx context.Context) (*Result, error)
}

// Datasetter provides copy-on-read access to the retained dataset.
type Datasetter interface {
	// Dataset returns a copy of the last run's canonical set
	Dataset() []order.Observation

	// LastResult returns the last run's result, or nil before any run
	LastResult() *Result
}

// client is the internal implementation of the Client interface.
type client struct {
	mu      sync.RWMutex
	options *options

	// Retained state from the last successful run. Replaced wholesale on
	// each refresh, never mutated in place.
	dataset []order.Observation
	last    *Result

	// Auto-refresh machinery
	refreshTicker *time.Ticker
	refreshCancel context.CancelFunc
	stopCh        chan struct{}

	// Event hooks
	hooks *hooks
}

// New creates a goldenrecord client with the given options.
func New(opts ...Option) (Client, error) {
	c := &client{
		options: defaultOptions(),
		stopCh:  make(chan struct{}),
		hooks:   newHooks(),
	}
	if err := c.apply(opts...); err != nil {
		return nil, err
	}

	if c.options.refreshEnabled {
		if err := c.AutoRefreshOn(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Run executes one pipeline pass and retains the resulting dataset.
// Runs are serialized: a refresh tick and a manual call never interleave.
func (c *client) Run(ctx context.Context) (*Result, error) {
	result, err := run(ctx, c.options)
	if err != nil {
		return nil, err
	}
	c.setDataset(result)
	return result, nil
}

// Dataset returns a copy of the last run's canonical set.
func (c *client) Dataset() []order.Observation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dataset := make([]order.Observation, len(c.dataset))
	copy(dataset, c.dataset)
	return dataset
}

// LastResult returns the last run's result, or nil before any run.
func (c *client) LastResult() *Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// setDataset swaps in a run's dataset and fires change hooks against the
// previous one.
func (c *client) setDataset(result *Result) {
	c.mu.Lock()
	previous := c.dataset
	c.dataset = result.Canonical
	c.last = result
	c.mu.Unlock()

	c.hooks.triggerDatasetUpdate(previous, result.Canonical)
}
