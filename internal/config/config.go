// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"chiller-payback/core/energy"
	"chiller-payback/core/types"
	"chiller-payback/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Currencies contains currency defaults
	Currencies CurrencyConfig `json:"currencies"`

	// Bins is the part-load bin weight policy
	Bins energy.BinProfile `json:"bins"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CurrencyConfig contains currency defaults
type CurrencyConfig struct {
	// Energy is the currency operating costs are expressed in
	Energy types.Currency `json:"energy"`

	// Capital is the currency equipment prices are quoted in
	Capital types.Currency `json:"capital"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-option breakdown
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Currencies: CurrencyConfig{
			Energy:  types.CurrencyGEL,
			Capital: types.CurrencyEUR,
		},
		Bins: energy.DefaultBinProfile(),
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if err := config.Bins.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
