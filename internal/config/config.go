package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Display settings for CLI and TUI output
	Display DisplayConfig `yaml:"display"`

	// Optional dataset loaded into the stores at startup
	Seed SeedConfig `yaml:"seed"`
}

type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"` // Prefix for money values (e.g. "$")
	DateFormat     string `yaml:"date_format"`     // Go reference layout for dates
}

type SeedConfig struct {
	Path string `yaml:"path"` // Path to a YAML seed dataset; empty disables seeding
}

// DefaultConfigPath returns ~/.config/salesdesk/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "salesdesk", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "salesdesk", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			CurrencySymbol: "$",
			DateFormat:     "2006-01-02",
		},
		Seed: SeedConfig{
			Path: "",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}
