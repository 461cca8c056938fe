// Package constants provides shared constants used throughout the goldenrecord codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// OracleTimeout is the budget for a single live-count oracle call
	OracleTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// RunTimeout is the timeout for one full consolidation run
	RunTimeout = 5 * time.Minute

	// DefaultRefreshInterval is the default interval between automatic re-runs
	DefaultRefreshInterval = 1 * time.Hour

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// DialTimeout is the timeout for establishing network connections
	DialTimeout = 10 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxParseWorkers bounds concurrent snapshot file parsing
	MaxParseWorkers = 4

	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096

	// MaxSnapshotFiles caps how many files one glob may expand to
	MaxSnapshotFiles = 10000
)

// Dataset defaults
const (
	// DefaultCanonicalFilename is the canonical output written when no path is configured
	DefaultCanonicalFilename = "canonical.csv"

	// DefaultValidationFilename is the validation record written next to the canonical file
	DefaultValidationFilename = "validation.json"

	// DefaultDatasetName identifies the dataset when a manifest is not in use
	DefaultDatasetName = "purchase-orders"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatSentDate is the registry's sent-date column format (MM/DD/YYYY)
	TimeFormatSentDate = "01/02/2006"

	// TimeFormatSnapshot is the calendar-date form used for snapshot ordering keys
	TimeFormatSnapshot = "2006-01-02"
)
