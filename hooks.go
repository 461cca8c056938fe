package goldenrecord

import (
	"sync"

	"github.com/civicdata/goldenrecord/pkg/order"
)

// Hook function types for order events.
type (
	// OrderAddedHook is called when a number appears in the dataset
	OrderAddedHook func(order order.Order)

	// OrderUpdatedHook is called when a number's canonical row changes
	OrderUpdatedHook func(old, updated order.Order)

	// OrderRemovedHook is called when a number leaves the dataset
	OrderRemovedHook func(order order.Order)
)

// Hooks provides access to event callback registration.
type Hooks interface {
	// OnOrderAdded registers a callback for when orders appear
	OnOrderAdded(OrderAddedHook)

	// OnOrderUpdated registers a callback for when orders change
	OnOrderUpdated(OrderUpdatedHook)

	// OnOrderRemoved registers a callback for when orders disappear
	OnOrderRemoved(OrderRemovedHook)
}

// OnOrderAdded registers a callback for when orders appear.
func (c *client) OnOrderAdded(fn OrderAddedHook) { c.hooks.OnOrderAdded(fn) }

// OnOrderUpdated registers a callback for when orders change.
func (c *client) OnOrderUpdated(fn OrderUpdatedHook) { c.hooks.OnOrderUpdated(fn) }

// OnOrderRemoved registers a callback for when orders disappear.
func (c *client) OnOrderRemoved(fn OrderRemovedHook) { c.hooks.OnOrderRemoved(fn) }

// hooks manages event callbacks for dataset changes.
type hooks struct {
	mu             sync.RWMutex
	onOrderAdded   []OrderAddedHook
	onOrderUpdated []OrderUpdatedHook
	onOrderRemoved []OrderRemovedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnOrderAdded registers a callback for when orders appear.
func (h *hooks) OnOrderAdded(fn OrderAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onOrderAdded = append(h.onOrderAdded, fn)
}

// OnOrderUpdated registers a callback for when orders change.
func (h *hooks) OnOrderUpdated(fn OrderUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onOrderUpdated = append(h.onOrderUpdated, fn)
}

// OnOrderRemoved registers a callback for when orders disappear.
func (h *hooks) OnOrderRemoved(fn OrderRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onOrderRemoved = append(h.onOrderRemoved, fn)
}

// triggerDatasetUpdate compares consecutive datasets per number and fires
// the appropriate hooks. For allowlisted numbers with several canonical
// rows, the most recent row represents the number in the comparison.
func (h *hooks) triggerDatasetUpdate(previous, current []order.Observation) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.onOrderAdded) == 0 && len(h.onOrderUpdated) == 0 && len(h.onOrderRemoved) == 0 {
		return
	}

	oldByNumber := latestByNumber(previous)
	newByNumber := latestByNumber(current)

	for number, updated := range newByNumber {
		old, existed := oldByNumber[number]
		if !existed {
			for _, hook := range h.onOrderAdded {
				hook(updated)
			}
			continue
		}
		if !old.Equal(updated) {
			for _, hook := range h.onOrderUpdated {
				hook(old, updated)
			}
		}
	}

	for number, old := range oldByNumber {
		if _, exists := newByNumber[number]; !exists {
			for _, hook := range h.onOrderRemoved {
				hook(old)
			}
		}
	}
}

// latestByNumber keeps the chronologically last canonical row per number.
func latestByNumber(observations []order.Observation) map[string]order.Order {
	byNumber := make(map[string]order.Order, len(observations))
	seen := make(map[string]order.Observation, len(observations))
	for _, ob := range observations {
		prev, exists := seen[ob.Order.Number]
		if !exists || !ob.SnapshotDate.Before(prev.SnapshotDate) {
			seen[ob.Order.Number] = ob
			byNumber[ob.Order.Number] = ob.Order
		}
	}
	return byNumber
}
