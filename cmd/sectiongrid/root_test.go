package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sectiongrid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parse(t *testing.T, args ...string) (*rootOptions, *cobra.Command) {
	t.Helper()
	o := &rootOptions{}
	cmd := &cobra.Command{}
	o.addFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return o, cmd
}

func TestConfig_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
limit = 4
columns = 2
theme = "light"

[log]
level = "debug"
`)
	o, cmd := parse(t, "--config", path, "--columns", "5")

	cfg, err := o.config(cmd)

	require.NoError(t, err)
	require.NotNil(t, cfg.Limit)
	assert.Equal(t, uint(4), *cfg.Limit)
	assert.Equal(t, 5, cfg.Columns)
	assert.Equal(t, sectiongrid.ThemeLight, cfg.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestConfig_DefaultsWhenFileMissing(t *testing.T) {
	t.Parallel()

	o, cmd := parse(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := o.config(cmd)

	require.NoError(t, err)
	assert.Equal(t, sectiongrid.DefaultConfig(), cfg)
}

func TestConfig_LimitFlag(t *testing.T) {
	t.Parallel()

	o, cmd := parse(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "--limit", "0")

	cfg, err := o.config(cmd)

	require.NoError(t, err)
	require.NotNil(t, cfg.Limit, "an explicit zero limit is still a limit")
	assert.Equal(t, uint(0), *cfg.Limit)
}

func TestConfig_InvalidTheme(t *testing.T) {
	t.Parallel()

	o, cmd := parse(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "--theme", "solarized")

	_, err := o.config(cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme")
}

func TestConfig_BrokenFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "columns = [")
	o, cmd := parse(t, "--config", path)

	_, err := o.config(cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestNewLogger_WritesLogfmtToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "sectiongrid.log")

	logger, closeLog, err := newLogger(sectiongrid.LogConfig{Level: "info", File: path})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("limit reached", "limit", 5)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "prefix=sectiongrid")
	assert.Contains(t, string(data), `msg="limit reached" limit=5`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, _, err := newLogger(sectiongrid.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})

	require.Error(t, err)
}

func TestDemoSections_MatchDemoLimit(t *testing.T) {
	t.Parallel()

	sections := demoSections()

	require.Len(t, sections, 3)
	assert.Greater(t, len(sections[1].Items), demoLimit)
	assert.Zero(t, sectiongrid.CountSelected(sections))
}
