// Package config loads daykan's YAML configuration
package config

import (
	"os"
	"path/filepath"

	"github.com/thenoetrevino/daykan/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string             `yaml:"database_path"`
	LogLevel     string             `yaml:"log_level"`
	Daemon       DaemonConfig       `yaml:"daemon"`
	ColorScheme  colors.ColorScheme `yaml:"theme"`
}

// DaemonConfig configures the long-running `daykan daemon` process
type DaemonConfig struct {
	// MetricsAddr is the listen address for /metrics; empty disables it
	MetricsAddr string `yaml:"metrics_addr"`
	// RolloverAt is the local wall-clock time (HH:MM:SS) of the daily catch-up job
	RolloverAt string `yaml:"rollover_at"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		config.applyEnv()
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		config.applyEnv()
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile reads and parses a specific config file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyEnv()
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "daykan", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "daykan", "config.yaml"), nil
}

// DataDir is where the database and logs live by default
func DataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".daykan")
	}
	return ".daykan"
}

// applyEnv lets DAYKAN_* environment variables override the file
func (c *Config) applyEnv() {
	if v := os.Getenv("DAYKAN_DB_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("DAYKAN_METRICS_ADDR"); v != "" {
		c.Daemon.MetricsAddr = v
	}
	if v := os.Getenv("DAYKAN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(DataDir(), "tasks.db")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Daemon.RolloverAt == "" {
		c.Daemon.RolloverAt = "00:00:05"
	}
	c.ColorScheme.ApplyDefaults()
}
