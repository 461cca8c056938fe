// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"os"

	goldenrecord "github.com/civicdata/goldenrecord"
	"github.com/civicdata/goldenrecord/internal/cmd/constants"
	"github.com/civicdata/goldenrecord/internal/cmd/globals"
	"github.com/civicdata/goldenrecord/internal/cmd/table"
	"github.com/civicdata/goldenrecord/pkg/differ"
	"github.com/civicdata/goldenrecord/pkg/order"
	"github.com/civicdata/goldenrecord/pkg/recurring"
	"github.com/civicdata/goldenrecord/pkg/snapshot"
	"github.com/civicdata/goldenrecord/pkg/validate"
)

// FormatOrders handles the common pattern of formatting orders for output.
// This encapsulates the switch logic for different output formats.
func FormatOrders(orders []order.Order, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, constants.FormatCSV, "":
		outputData = toOutputData(table.OrdersToTableData(orders, globalFlags.Output == constants.FormatWide))
	default:
		outputData = orders
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatFiles formats located snapshot files for output.
func FormatFiles(files []snapshot.File, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, constants.FormatCSV, "":
		outputData = toOutputData(table.FilesToTableData(files))
	default:
		outputData = files
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAllowlist formats allowlist entries for output.
func FormatAllowlist(entries []recurring.Entry, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, constants.FormatCSV, "":
		outputData = toOutputData(table.AllowlistToTableData(entries))
	default:
		outputData = entries
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatResult formats a run result for output.
func FormatResult(result *goldenrecord.Result, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = toOutputData(table.ResultToTableData(result))
	default:
		outputData = result
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatRecord formats a validation record for output.
func FormatRecord(record *validate.Record, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = toOutputData(table.RecordToTableData(record))
	default:
		outputData = record
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatReport formats a divergence report. Table output shows the
// summary plus any changed numbers; structured formats carry the full
// report for downstream inspection.
func FormatReport(report *differ.Report, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		if err := formatter.Format(os.Stdout, toOutputData(table.ReportToTableData(report))); err != nil {
			return err
		}
		if len(report.StatusChanges) > 0 {
			return formatter.Format(os.Stdout, toOutputData(table.StatusChangesToTableData(report.StatusChanges)))
		}
		return nil
	default:
		return formatter.Format(os.Stdout, report)
	}
}

// FormatAny handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func FormatAny(data any, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))
	return formatter.Format(os.Stdout, data)
}

// toOutputData bridges table.Data into this package's Data shape.
func toOutputData(td table.Data) Data {
	return Data{
		Headers:         td.Headers,
		Rows:            td.Rows,
		ColumnAlignment: td.ColumnAlignment,
	}
}
