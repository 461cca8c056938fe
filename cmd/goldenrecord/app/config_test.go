package app

import (
	"os"
	"testing"
	"time"

	"github.com/civicdata/goldenrecord/pkg/constants"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	// LogFormat should have a default
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.OracleTimeout != constants.OracleTimeout {
		t.Errorf("OracleTimeout = %v, want %v", config.OracleTimeout, constants.OracleTimeout)
	}
	if config.RefreshInterval != constants.DefaultRefreshInterval {
		t.Errorf("RefreshInterval = %v, want %v", config.RefreshInterval, constants.DefaultRefreshInterval)
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	// Save original env
	oldVerbose := os.Getenv("GOLDENRECORD_VERBOSE")
	oldOutput := os.Getenv("GOLDENRECORD_OUTPUT")
	defer func() {
		os.Setenv("GOLDENRECORD_VERBOSE", oldVerbose)
		os.Setenv("GOLDENRECORD_OUTPUT", oldOutput)
	}()

	// Set test environment variables
	os.Setenv("GOLDENRECORD_VERBOSE", "true")
	os.Setenv("GOLDENRECORD_OUTPUT", "json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.Verbose {
		t.Error("GOLDENRECORD_VERBOSE environment variable not loaded")
	}
	if config.Output != "json" {
		t.Errorf("Output = %s, want json", config.Output)
	}
}

// TestConfig_PipelinePaths verifies pipeline path configuration.
func TestConfig_PipelinePaths(t *testing.T) {
	// Save original env
	oldSnapshots := os.Getenv("GOLDENRECORD_SNAPSHOTS")
	oldAllowlist := os.Getenv("GOLDENRECORD_ALLOWLIST")
	oldCanonical := os.Getenv("GOLDENRECORD_CANONICAL")
	defer func() {
		os.Setenv("GOLDENRECORD_SNAPSHOTS", oldSnapshots)
		os.Setenv("GOLDENRECORD_ALLOWLIST", oldAllowlist)
		os.Setenv("GOLDENRECORD_CANONICAL", oldCanonical)
	}()

	// Set test values
	os.Setenv("GOLDENRECORD_SNAPSHOTS", "exports/**/*.csv")
	os.Setenv("GOLDENRECORD_ALLOWLIST", "recurring.csv")
	os.Setenv("GOLDENRECORD_CANONICAL", "out/canonical.csv")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Snapshots != "exports/**/*.csv" {
		t.Errorf("Snapshots = %s, want exports/**/*.csv", config.Snapshots)
	}
	if config.Allowlist != "recurring.csv" {
		t.Errorf("Allowlist = %s, want recurring.csv", config.Allowlist)
	}
	if config.Canonical != "out/canonical.csv" {
		t.Errorf("Canonical = %s, want out/canonical.csv", config.Canonical)
	}
}

// TestConfig_RefreshInterval verifies time duration parsing.
func TestConfig_RefreshInterval(t *testing.T) {
	// Save original env
	oldInterval := os.Getenv("GOLDENRECORD_REFRESH_INTERVAL")
	defer os.Setenv("GOLDENRECORD_REFRESH_INTERVAL", oldInterval)

	// Set test interval
	os.Setenv("GOLDENRECORD_REFRESH_INTERVAL", "2h")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.RefreshInterval != 2*time.Hour {
		t.Errorf("RefreshInterval = %v, want 2h", config.RefreshInterval)
	}
}

// TestConfig_Oracle verifies live-count endpoint configuration.
func TestConfig_Oracle(t *testing.T) {
	// Save original env
	oldURL := os.Getenv("GOLDENRECORD_ORACLE_URL")
	oldTimeout := os.Getenv("GOLDENRECORD_ORACLE_TIMEOUT")
	defer func() {
		os.Setenv("GOLDENRECORD_ORACLE_URL", oldURL)
		os.Setenv("GOLDENRECORD_ORACLE_TIMEOUT", oldTimeout)
	}()

	// Set test values
	os.Setenv("GOLDENRECORD_ORACLE_URL", "https://registry.example.gov/api/count")
	os.Setenv("GOLDENRECORD_ORACLE_TIMEOUT", "10s")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.OracleURL != "https://registry.example.gov/api/count" {
		t.Errorf("OracleURL = %s, want https://registry.example.gov/api/count", config.OracleURL)
	}
	if config.OracleTimeout != 10*time.Second {
		t.Errorf("OracleTimeout = %v, want 10s", config.OracleTimeout)
	}
}

// TestConfig_BooleanFlags verifies boolean flag parsing.
func TestConfig_BooleanFlags(t *testing.T) {
	tests := []struct {
		name     string
		envVar   string
		envValue string
		check    func(*Config) bool
		want     bool
	}{
		{
			name:     "NoValidate",
			envVar:   "GOLDENRECORD_NO_VALIDATE",
			envValue: "true",
			check:    func(c *Config) bool { return c.NoValidate },
			want:     true,
		},
		{
			name:     "RefreshEnabled",
			envVar:   "GOLDENRECORD_REFRESH_ENABLED",
			envValue: "true",
			check:    func(c *Config) bool { return c.RefreshEnabled },
			want:     true,
		},
		{
			name:     "NoColor",
			envVar:   "GOLDENRECORD_NO_COLOR",
			envValue: "1",
			check:    func(c *Config) bool { return c.NoColor },
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save and restore env
			old := os.Getenv(tt.envVar)
			defer os.Setenv(tt.envVar, old)

			os.Setenv(tt.envVar, tt.envValue)

			config, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() failed: %v", err)
			}

			got := tt.check(config)
			if got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestConfig_LoggingOptions verifies logging configuration.
func TestConfig_LoggingOptions(t *testing.T) {
	// Save original env
	oldLevel := os.Getenv("LOG_LEVEL")
	oldFormat := os.Getenv("LOG_FORMAT")
	oldOutput := os.Getenv("LOG_OUTPUT")
	defer func() {
		os.Setenv("LOG_LEVEL", oldLevel)
		os.Setenv("LOG_FORMAT", oldFormat)
		os.Setenv("LOG_OUTPUT", oldOutput)
	}()

	// Set test values
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", config.LogFormat)
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %s, want stdout", config.LogOutput)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Output: "table", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "json", "debug")

	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if config.Quiet {
		t.Error("Quiet should remain false")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flags")
	}
	if config.Output != "json" {
		t.Errorf("Output = %s, want json", config.Output)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}

	// Empty values never clobber existing settings
	config.UpdateFromFlags(true, false, true, "", "")
	if config.Output != "json" {
		t.Errorf("empty output flag clobbered Output, got %s", config.Output)
	}
	if config.LogLevel != "debug" {
		t.Errorf("empty log-level flag clobbered LogLevel, got %s", config.LogLevel)
	}
}
