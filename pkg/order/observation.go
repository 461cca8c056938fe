package order

import "time"

// Observation is one occurrence of a purchase order within a particular
// snapshot. Observations are immutable once collected; reconciliation only
// filters them.
type Observation struct {
	Order        Order     `json:"order" yaml:"order"`
	SnapshotDate time.Time `json:"snapshot_date" yaml:"snapshot_date"` // Ordering key derived from the snapshot file
	Source       string    `json:"source" yaml:"source"`               // Path of the snapshot file the row was read from
}

// Number returns the observed purchase-order number.
func (ob Observation) Number() string {
	return ob.Order.Number
}

// Orders strips lineage from a list of observations, leaving only the
// business fields. Used at boundaries where metadata must not leak, such
// as the canonical writer and the differ.
func Orders(observations []Observation) []Order {
	orders := make([]Order, len(observations))
	for i, ob := range observations {
		orders[i] = ob.Order
	}
	return orders
}
