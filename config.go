package sectiongrid

import (
	"errors"
	"fmt"
	"strings"
)

// Theme names accepted in configuration.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultColumns matches the three-across layout of the grid.
const DefaultColumns = 3

// Config holds user configuration for the grid.
type Config struct {
	Limit   *uint     `toml:"limit"`   // Selection cap; absent means unlimited
	Columns int       `toml:"columns"` // Cells per row
	Theme   string    `toml:"theme"`   // "dark" or "light"
	Log     LogConfig `toml:"log"`
}

// LogConfig configures runtime logging.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Empty uses the default state path
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Columns: DefaultColumns,
		Theme:   ThemeDark,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be >= 1, got %d", c.Columns)
	}
	switch strings.ToLower(strings.TrimSpace(c.Theme)) {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme: %q", c.Theme)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
	case "":
		return errors.New("log.level is required")
	default:
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}
	return nil
}
