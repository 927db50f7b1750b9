// Package toml loads sectiongrid configuration from TOML files.
package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sectiongrid"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Load reads the config file at path over defaults. A blank path, a missing
// file or an empty file yields defaults unchanged.
func Load(path string, defaults sectiongrid.Config) (sectiongrid.Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return sectiongrid.Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return cfg, nil
	}

	if err := gotoml.Unmarshal(content, &cfg); err != nil {
		return sectiongrid.Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return sectiongrid.Config{}, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories if needed.
func Save(path string, cfg sectiongrid.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
