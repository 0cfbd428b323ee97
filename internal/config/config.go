// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Acquisition behavior of the CLI and DLL callers
	Acquire AcquireConfig `mapstructure:"acquire"`

	// Console allocation for injected use
	Console ConsoleConfig `mapstructure:"console"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// AcquireConfig controls what the callers do with the device they now own.
// The library itself never touches the device after returning it.
type AcquireConfig struct {
	Probe        bool `mapstructure:"probe"`         // run TestCooperativeLevel after acquiring
	ReleaseAfter bool `mapstructure:"release_after"` // release the device once the CLI is done with it
}

// ConsoleConfig controls console allocation in the DLL entry point.
type ConsoleConfig struct {
	Alloc bool `mapstructure:"alloc"` // AllocConsole before acquiring, so diagnostics have somewhere to go
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	FileLogging bool   `mapstructure:"file_logging"` // Enable/disable file logging
	LogLevel    string `mapstructure:"log_level"`    // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Acquire: AcquireConfig{
			Probe:        true,
			ReleaseAfter: true,
		},
		Console: ConsoleConfig{
			Alloc: true,
		},
		Logging: LoggingConfig{
			FileLogging: false,
			LogLevel:    "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("d3dgrab")
	viper.SetConfigType("toml")

	// If a specific path is set, use only that
	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "d3dgrab"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("acquire.probe", DefaultConfig.Acquire.Probe)
	viper.SetDefault("acquire.release_after", DefaultConfig.Acquire.ReleaseAfter)

	viper.SetDefault("console.alloc", DefaultConfig.Console.Alloc)

	viper.SetDefault("logging.file_logging", DefaultConfig.Logging.FileLogging)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Update makes c the current configuration and pushes it into viper so a
// following Save persists it.
func Update(c *Config) {
	cfg = c
	viper.Set("acquire.probe", c.Acquire.Probe)
	viper.Set("acquire.release_after", c.Acquire.ReleaseAfter)
	viper.Set("console.alloc", c.Console.Alloc)
	viper.Set("logging.file_logging", c.Logging.FileLogging)
	viper.Set("logging.log_level", c.Logging.LogLevel)
}

// GetConfigPath returns the path the config is (or would be) written to
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "d3dgrab.toml"
	}
	return filepath.Join(dir, "d3dgrab", "d3dgrab.toml")
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
