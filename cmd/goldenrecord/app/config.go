package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/civicdata/goldenrecord/pkg/constants"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Pipeline configuration
	Dataset    string
	Snapshots  string
	Allowlist  string
	Canonical  string
	Validation string
	Policy     string
	Workers    int

	// Live-count validation
	OracleURL     string
	OracleTimeout time.Duration
	NoValidate    bool

	// Auto-refresh
	RefreshEnabled  bool
	RefreshInterval time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.goldenrecord.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("goldenrecord")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".goldenrecord")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Pipeline configuration
		Dataset:    viper.GetString("dataset"),
		Snapshots:  viper.GetString("snapshots"),
		Allowlist:  viper.GetString("allowlist"),
		Canonical:  viper.GetString("canonical"),
		Validation: viper.GetString("validation"),
		Policy:     viper.GetString("policy"),
		Workers:    viper.GetInt("workers"),

		// Live-count validation
		OracleURL:     viper.GetString("oracle_url"),
		OracleTimeout: viper.GetDuration("oracle_timeout"),
		NoValidate:    viper.GetBool("no_validate"),

		// Auto-refresh
		RefreshEnabled:  viper.GetBool("refresh_enabled"),
		RefreshInterval: viper.GetDuration("refresh_interval"),

		// Logging configuration. LogLevel stays empty when unset so the
		// -v/-q shortcuts can apply; determineLogLevel falls back to info.
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.OracleTimeout == 0 {
		config.OracleTimeout = constants.OracleTimeout
	}
	if config.RefreshInterval == 0 {
		config.RefreshInterval = constants.DefaultRefreshInterval
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// Try to load .env files in order of precedence
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
