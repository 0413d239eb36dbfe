// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/fecha/internal/calendar"
)

// Config holds the application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Format  FormatConfig  `toml:"format"`
	Range   RangeConfig   `toml:"range"`
	History HistoryConfig `toml:"history"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// FormatConfig holds date formatting settings.
type FormatConfig struct {
	Date string `toml:"date"` // Go time layout, e.g. "2006-01-02"
}

// RangeConfig bounds the selectable dates. Both ends optional, ISO dates.
type RangeConfig struct {
	Min string `toml:"min"` // e.g. "2020-01-01"
	Max string `toml:"max"` // e.g. "2030-12-31"
}

// HistoryConfig holds settings for the picked-date history store.
type HistoryConfig struct {
	DBPath   string `toml:"db_path"`
	Disabled bool   `toml:"disabled"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "mocha",
		},
		Format: FormatConfig{
			Date: "2006-01-02",
		},
		History: HistoryConfig{
			DBPath: defaultDBPath(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fecha.db"
	}
	return filepath.Join(home, ".local", "share", "fecha", "fecha.db")
}

// DefaultConfigPath returns the default config file path, honoring the
// FECHA_CONFIG override.
func DefaultConfigPath() string {
	if v := os.Getenv("FECHA_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "fecha", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.History.DBPath = expandPath(cfg.History.DBPath)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FECHA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("FECHA_DATE_FORMAT"); v != "" {
		cfg.Format.Date = v
	}
	if v := os.Getenv("FECHA_MIN_DATE"); v != "" {
		cfg.Range.Min = v
	}
	if v := os.Getenv("FECHA_MAX_DATE"); v != "" {
		cfg.Range.Max = v
	}
	if v := os.Getenv("FECHA_DB_PATH"); v != "" {
		cfg.History.DBPath = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Format.Date == "" {
		return errors.New("format.date must not be empty")
	}
	rng, err := c.DateRange()
	if err != nil {
		return err
	}
	if rng.Min != nil && rng.Max != nil && rng.Min.After(*rng.Max) {
		return errors.New("range.min must not be after range.max")
	}
	return nil
}

// DateRange parses the configured bounds into a calendar.Range.
func (c *Config) DateRange() (calendar.Range, error) {
	var r calendar.Range
	if c.Range.Min != "" {
		d, err := calendar.Parse(c.Range.Min)
		if err != nil {
			return calendar.Range{}, fmt.Errorf("range.min: %w", err)
		}
		r.Min = &d
	}
	if c.Range.Max != "" {
		d, err := calendar.Parse(c.Range.Max)
		if err != nil {
			return calendar.Range{}, fmt.Errorf("range.max: %w", err)
		}
		r.Max = &d
	}
	return r, nil
}
