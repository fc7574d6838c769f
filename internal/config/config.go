package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines which files a scan picks up, how the catalog behaves, and
// how the progress indicator is themed.
type Config struct {
	Scan struct {
		// Extensions is the suffix allow-list applied during the walk.
		// Matching is case-sensitive and purely a suffix test. The bare
		// "dbf" entry (no leading dot) is carried over from the product
		// as-is: it also matches names like "mydbf".
		Extensions []string `yaml:"extensions"`
		// GeometryTypes enables the geometry-type probe for .shp files
		GeometryTypes bool `yaml:"geometry_types"`
	} `yaml:"scan"`
	Directories struct {
		Default string `yaml:"default"` // Default root to scan
	} `yaml:"directories"`
	Watch struct {
		Enabled  bool `yaml:"enabled"`  // Refresh the catalog on file changes
		Debounce int  `yaml:"debounce"` // Coalescing window in milliseconds
	} `yaml:"watch"`
	Theme struct {
		ProgressLow  string `yaml:"progress_low"`  // Bar color below 50%
		ProgressMid  string `yaml:"progress_mid"`  // Bar color from 50% to 80%
		ProgressHigh string `yaml:"progress_high"` // Bar color from 80%
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/gadget/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "gadget", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if len(tempCfg.Scan.Extensions) > 0 {
		cfg.Scan.Extensions = tempCfg.Scan.Extensions
	}
	cfg.Scan.GeometryTypes = tempCfg.Scan.GeometryTypes

	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}

	cfg.Watch.Enabled = tempCfg.Watch.Enabled
	if tempCfg.Watch.Debounce > 0 {
		cfg.Watch.Debounce = tempCfg.Watch.Debounce
	}

	if tempCfg.Theme.ProgressLow != "" {
		cfg.Theme.ProgressLow = tempCfg.Theme.ProgressLow
	}
	if tempCfg.Theme.ProgressMid != "" {
		cfg.Theme.ProgressMid = tempCfg.Theme.ProgressMid
	}
	if tempCfg.Theme.ProgressHigh != "" {
		cfg.Theme.ProgressHigh = tempCfg.Theme.ProgressHigh
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Scan.Extensions = []string{
		".shp", ".gpkg", ".geojson", ".kml", ".csv", ".xlsx", ".xls", "dbf",
	}
	cfg.Scan.GeometryTypes = false // Probing opens every .shp, off by default

	cfg.Directories.Default = "."

	cfg.Watch.Enabled = false
	cfg.Watch.Debounce = 500

	// ANSI 256 color codes, also understood by lipgloss
	cfg.Theme.ProgressLow = "196"  // Red
	cfg.Theme.ProgressMid = "220"  // Yellow
	cfg.Theme.ProgressHigh = "114" // Green

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if len(c.Scan.Extensions) == 0 {
		return fmt.Errorf("scan extensions list must not be empty")
	}
	for i, ext := range c.Scan.Extensions {
		if ext == "" {
			return fmt.Errorf("extension %d: suffix must not be empty", i)
		}
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must be >= 0 milliseconds")
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Scan.GeometryTypes = true
	cfg.Watch.Debounce = 10
	return cfg
}
