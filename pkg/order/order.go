// Package order defines the purchase-order row model shared by every stage
// of the consolidation pipeline. Fields are kept as the opaque strings the
// registry publishes; typing and enrichment belong to downstream consumers.
// The one exception is the sent date, which ParseSentDate reads defensively
// for ordering purposes only.
package order

// Order is one purchase-order row as scraped from the registry.
type Order struct {
	Number       string `json:"po_number" yaml:"po_number"`       // Purchase-order number (reused by the registry for re-issued orders)
	Description  string `json:"description" yaml:"description"`   // Free-text description
	Vendor       string `json:"vendor" yaml:"vendor"`             // Awarded vendor name
	Organization string `json:"organization" yaml:"organization"` // Issuing organization
	Department   string `json:"department" yaml:"department"`     // Issuing department
	Buyer        string `json:"buyer" yaml:"buyer"`               // Responsible buyer
	Status       string `json:"status" yaml:"status"`             // Lifecycle status (Sent, Partial, Closed, ...)
	SentDate     string `json:"sent_date" yaml:"sent_date"`       // Sent date as published (MM/DD/YYYY text)
	Total        string `json:"total" yaml:"total"`               // Order total as published (currency text, e.g. "$1,234.56")
}

// Columns returns the canonical CSV column order. The canonical file is
// schema-stable: exactly these columns, in this order, regardless of any
// metadata carried internally.
func Columns() []string {
	return []string{
		"po_number",
		"description",
		"vendor",
		"organization",
		"department",
		"buyer",
		"status",
		"sent_date",
		"total",
	}
}

// Record returns the order's field values in canonical column order.
func (o Order) Record() []string {
	return []string{
		o.Number,
		o.Description,
		o.Vendor,
		o.Organization,
		o.Department,
		o.Buyer,
		o.Status,
		o.SentDate,
		o.Total,
	}
}

// FromRecord builds an Order from a record using the given column index
// map (canonical column name to position). Missing or out-of-range columns
// yield empty fields, which keeps ragged rows usable.
func FromRecord(record []string, index map[string]int) Order {
	at := func(col string) string {
		i, ok := index[col]
		if !ok || i < 0 || i >= len(record) {
			return ""
		}
		return record[i]
	}
	return Order{
		Number:       at("po_number"),
		Description:  at("description"),
		Vendor:       at("vendor"),
		Organization: at("organization"),
		Department:   at("department"),
		Buyer:        at("buyer"),
		Status:       at("status"),
		SentDate:     at("sent_date"),
		Total:        at("total"),
	}
}

// Equal reports whether two orders agree on every business field.
func (o Order) Equal(other Order) bool {
	return o == other
}
