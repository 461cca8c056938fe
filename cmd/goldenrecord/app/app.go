// Package app provides the application context and dependency management
// for the goldenrecord CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/civicdata/goldenrecord"
	"github.com/civicdata/goldenrecord/internal/oracle"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/reconcile"
)

// App represents the goldenrecord application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// consolidation client, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client goldenrecord.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// Snapshots returns the configured snapshot glob pattern.
func (a *App) Snapshots() string {
	return a.config.Snapshots
}

// AllowlistPath returns the configured recurring-PO allowlist path.
func (a *App) AllowlistPath() string {
	return a.config.Allowlist
}

// CanonicalPath returns the configured canonical output path.
func (a *App) CanonicalPath() string {
	return a.config.Canonical
}

// ValidationPath returns the configured validation record path.
func (a *App) ValidationPath() string {
	return a.config.Validation
}

// OracleURL returns the configured live registry count endpoint.
func (a *App) OracleURL() string {
	return a.config.OracleURL
}

// Client returns the goldenrecord client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (goldenrecord.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := goldenrecord.New(a.RunOptions()...)
	if err != nil {
		return nil, errors.WrapValidation("client", err)
	}

	a.client = c
	return c, nil
}

// ClientWithOptions returns a new client with custom options.
// This is useful for commands that need configurations different from
// the default app instance (e.g., run with explicit paths).
func (a *App) ClientWithOptions(opts ...goldenrecord.Option) (goldenrecord.Client, error) {
	c, err := goldenrecord.New(opts...)
	if err != nil {
		return nil, errors.WrapValidation("client", err)
	}
	return c, nil
}

// RunOptions constructs pipeline options from the app configuration.
func (a *App) RunOptions() []goldenrecord.Option {
	var opts []goldenrecord.Option

	if a.config.Dataset != "" {
		opts = append(opts, goldenrecord.WithDataset(a.config.Dataset))
	}
	if a.config.Snapshots != "" {
		opts = append(opts, goldenrecord.WithSnapshots(a.config.Snapshots))
	}
	if a.config.Allowlist != "" {
		opts = append(opts, goldenrecord.WithAllowlist(a.config.Allowlist))
	}
	if a.config.Canonical != "" {
		opts = append(opts, goldenrecord.WithCanonicalPath(a.config.Canonical))
	}
	if a.config.Validation != "" {
		opts = append(opts, goldenrecord.WithValidationPath(a.config.Validation))
	}
	if a.config.Policy != "" {
		if policy, ok := reconcile.PolicyByName(a.config.Policy); ok {
			opts = append(opts, goldenrecord.WithPolicy(policy))
		} else {
			a.logger.Warn().Str("policy", a.config.Policy).Msg("Unknown policy, using default")
		}
	}
	if a.config.Workers > 0 {
		opts = append(opts, goldenrecord.WithWorkers(a.config.Workers))
	}

	// Live-count validation
	if a.config.OracleURL != "" {
		opts = append(opts, goldenrecord.WithOracle(oracle.New(a.config.OracleURL).CountFunc()))
	}
	if a.config.OracleTimeout > 0 {
		opts = append(opts, goldenrecord.WithOracleTimeout(a.config.OracleTimeout))
	}
	if a.config.NoValidate {
		opts = append(opts, goldenrecord.WithoutValidation())
	}

	// Auto-refresh settings
	if a.config.RefreshEnabled {
		opts = append(opts, goldenrecord.WithAutoRefresh(true))
		if a.config.RefreshInterval > 0 {
			opts = append(opts, goldenrecord.WithRefreshInterval(a.config.RefreshInterval))
		}
	}

	return opts
}

// Shutdown performs graceful shutdown of the application.
// It stops any running background tasks and cleans up resources.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	c := a.client
	a.mu.RUnlock()

	if c != nil {
		// Stop auto-refresh if running
		if err := c.AutoRefreshOff(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to stop auto-refresh during shutdown")
		}
	}

	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c goldenrecord.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
