// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/civicdata/goldenrecord"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/goldenrecord/app implements it, providing
// dependency injection for commands while keeping them testable.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Client returns the default goldenrecord client, creating it lazily if
	// needed. This is thread-safe and ensures only one instance is created.
	Client() (goldenrecord.Client, error)

	// ClientWithOptions creates a new client with custom options.
	// Use this when a command needs configuration different from the
	// default instance (e.g., run with --snapshots).
	ClientWithOptions(...goldenrecord.Option) (goldenrecord.Client, error)

	// RunOptions returns the pipeline options derived from configuration,
	// for commands that execute one-shot consolidation runs.
	RunOptions() []goldenrecord.Option

	// Snapshots returns the configured snapshot glob pattern.
	Snapshots() string

	// AllowlistPath returns the configured recurring-PO allowlist path.
	AllowlistPath() string

	// CanonicalPath returns the configured canonical output path.
	CanonicalPath() string

	// ValidationPath returns the configured validation record path.
	ValidationPath() string

	// OracleURL returns the configured live registry count endpoint.
	OracleURL() string

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
