// Package fs resolves default file locations for sectiongrid.
package fs

import (
	"os"
	"path/filepath"
)

const appName = "sectiongrid"

// DefaultConfigPath returns the default config file path.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/sectiongrid,
// or the system temp directory if home is unavailable.
func DefaultConfigPath() string {
	return filepath.Join(baseDir("XDG_CONFIG_HOME", ".config"), "config.toml")
}

// DefaultLogPath returns the default runtime log file path.
// Uses XDG_STATE_HOME if set, otherwise falls back to ~/.local/state/sectiongrid.
func DefaultLogPath() string {
	return filepath.Join(baseDir("XDG_STATE_HOME", filepath.Join(".local", "state")), appName+".log")
}

func baseDir(env, homeRel string) string {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, homeRel, appName)
}
