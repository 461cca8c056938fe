package goldenrecord

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/civicdata/goldenrecord/pkg/constants"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ AutoRefresher = (*client)(nil)

// AutoRefresher provides controls for automatic pipeline re-runs.
type AutoRefresher interface {
	// AutoRefreshOn begins timer-driven re-runs of the pipeline
	AutoRefreshOn() error

	// AutoRefreshOff stops timer-driven re-runs
	AutoRefreshOff() error
}

// AutoRefreshOn begins timer-driven re-runs of the pipeline. A failed
// refresh is logged and the ticker continues; the retained dataset keeps
// its last good value.
func (c *client) AutoRefreshOn() error {
	if c.options.refreshInterval <= 0 {
		return &errors.ValidationError{
			Field:   "refreshInterval",
			Value:   c.options.refreshInterval,
			Message: "refresh interval must be positive",
		}
	}

	// Stop any existing refresh loop to prevent resource leaks.
	if err := c.AutoRefreshOff(); err != nil {
		return err
	}

	// Recreate stopCh since it was closed in AutoRefreshOff.
	c.stopCh = make(chan struct{})
	c.refreshTicker = time.NewTicker(c.options.refreshInterval)

	ctx, cancel := context.WithCancel(context.Background())
	c.refreshCancel = cancel

	go func(parentCtx context.Context) {
		for {
			select {
			case <-c.refreshTicker.C:
				runCtx, runCancel := context.WithTimeout(parentCtx, constants.RunTimeout)
				_, err := c.Run(runCtx)
				runCancel()

				if err != nil {
					if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
						return
					}
					logging.Error().Err(err).Msg("Auto-refresh run failed")
				}
			case <-parentCtx.Done():
				return
			case <-c.stopCh:
				return
			}
		}
	}(ctx)

	return nil
}

// AutoRefreshOff stops timer-driven re-runs.
func (c *client) AutoRefreshOff() error {
	if c.refreshTicker != nil {
		c.refreshTicker.Stop()
		c.refreshTicker = nil
	}
	if c.refreshCancel != nil {
		c.refreshCancel()
		c.refreshCancel = nil
	}
	select {
	case <-c.stopCh:
		// Already closed
	default:
		close(c.stopCh)
	}
	return nil
}
