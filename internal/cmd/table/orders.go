// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	goldenrecord "github.com/civicdata/goldenrecord"
	"github.com/civicdata/goldenrecord/pkg/constants"
	"github.com/civicdata/goldenrecord/pkg/differ"
	"github.com/civicdata/goldenrecord/pkg/order"
	"github.com/civicdata/goldenrecord/pkg/recurring"
	"github.com/civicdata/goldenrecord/pkg/snapshot"
	"github.com/civicdata/goldenrecord/pkg/validate"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// countPrinter renders integers with thousands separators.
var countPrinter = message.NewPrinter(language.English)

// FormatCount formats an integer with thousands separators.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// OrdersToTableData converts canonical orders to table format.
func OrdersToTableData(orders []order.Order, wide bool) Data {
	headers := []string{"PO Number", "Vendor", "Status", "Sent Date", "Total"}
	if wide {
		headers = append(headers, "Description", "Organization", "Department", "Buyer")
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		row := []string{
			o.Number,
			dash(o.Vendor),
			dash(o.Status),
			dash(o.SentDate),
			dash(o.Total),
		}
		if wide {
			row = append(row, dash(o.Description), dash(o.Organization), dash(o.Department), dash(o.Buyer))
		}
		rows = append(rows, row)
	}

	alignment := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}
	for len(alignment) < len(headers) {
		alignment = append(alignment, AlignLeft)
	}
	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// FilesToTableData converts located snapshot files to table format.
func FilesToTableData(files []snapshot.File) Data {
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{
			f.Date.Format(constants.TimeFormatSnapshot),
			f.Path,
		})
	}
	return Data{
		Headers: []string{"Snapshot Date", "Path"},
		Rows:    rows,
	}
}

// AllowlistToTableData converts allowlist entries to table format.
func AllowlistToTableData(entries []recurring.Entry) Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Number, strconv.Itoa(e.Count)})
	}
	return Data{
		Headers:         []string{"PO Number", "Allowed Copies"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// ResultToTableData converts a run result to a property table.
func ResultToTableData(result *goldenrecord.Result) Data {
	rows := [][]string{
		{"Run ID", result.RunID},
		{"Dataset", result.Dataset},
		{"Duration", result.Duration()},
		{"Files Processed", FormatCount(result.Stats.FilesProcessed)},
		{"Rows Processed", FormatCount(result.Stats.RowsProcessed)},
		{"Rows Skipped", FormatCount(result.Stats.RowsSkipped)},
		{"Unique POs", FormatCount(result.Tally.UniquePOs)},
		{"Duplicates Kept", FormatCount(result.Tally.DuplicatesKept)},
		{"Duplicates Skipped", FormatCount(result.Tally.DuplicatesSkipped)},
		{"Canonical Rows", FormatCount(result.CanonicalRows)},
		{"Canonical File", result.CanonicalPath},
	}

	if result.Validation != nil {
		rows = append(rows, validationRows(result.Validation)...)
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// RecordToTableData converts a validation record to a property table.
func RecordToTableData(record *validate.Record) Data {
	rows := [][]string{
		{"Run ID", record.RunID},
		{"Timestamp", record.Timestamp.String()},
		{"Canonical Rows", FormatCount(record.CanonicalCount)},
	}
	rows = append(rows, validationRows(record)...)
	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

func validationRows(record *validate.Record) [][]string {
	if record.Failed {
		return [][]string{
			{"Oracle Comparison", "failed: " + record.Error},
		}
	}
	return [][]string{
		{"Oracle Count", FormatCount(record.OracleCount)},
		{"Difference", FormatCount(record.Difference)},
		{"Captured", fmt.Sprintf("%.2f%%", record.PercentageCaptured*100)},
	}
}

// ReportToTableData converts a divergence report summary to table format.
func ReportToTableData(report *differ.Report) Data {
	counts := report.Counts()
	return Data{
		Headers: []string{"Category", "Count"},
		Rows: [][]string{
			{"Matched", FormatCount(counts.Matched)},
			{"Status Changes", FormatCount(counts.StatusChanges)},
			{"Truly Extra", FormatCount(counts.TrulyExtra)},
			{"Missing From Canonical", FormatCount(counts.MissingFromCanonical)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// StatusChangesToTableData lists changed numbers with both versions.
func StatusChangesToTableData(changes []differ.StatusChange) Data {
	rows := make([][]string, 0, len(changes))
	for _, change := range changes {
		rows = append(rows, []string{
			change.Number,
			describeDelta(change.Canonical, change.Truth),
		})
	}
	return Data{
		Headers: []string{"PO Number", "Canonical vs Truth"},
		Rows:    rows,
	}
}

// describeDelta names the fields that disagree between two versions.
func describeDelta(a, b order.Order) string {
	type field struct {
		name string
		av   string
		bv   string
	}
	fields := []field{
		{"description", a.Description, b.Description},
		{"vendor", a.Vendor, b.Vendor},
		{"organization", a.Organization, b.Organization},
		{"department", a.Department, b.Department},
		{"buyer", a.Buyer, b.Buyer},
		{"status", a.Status, b.Status},
		{"sent_date", a.SentDate, b.SentDate},
		{"total", a.Total, b.Total},
	}

	delta := ""
	for _, f := range fields {
		if f.av == f.bv {
			continue
		}
		if delta != "" {
			delta += "; "
		}
		delta += fmt.Sprintf("%s: %q -> %q", f.name, f.av, f.bv)
	}
	if delta == "" {
		return "-"
	}
	return delta
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
