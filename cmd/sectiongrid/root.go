package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/sectiongrid"
	"github.com/fwojciec/sectiongrid/bubbletea"
	"github.com/fwojciec/sectiongrid/clipboard"
	"github.com/fwojciec/sectiongrid/fs"
	"github.com/fwojciec/sectiongrid/jsonl"
	"github.com/fwojciec/sectiongrid/lipgloss"
	"github.com/fwojciec/sectiongrid/toml"
	"github.com/spf13/cobra"
)

// demoLimit caps the demo sections when no limit is configured.
const demoLimit = 5

// rootOptions holds the raw command-line flags.
type rootOptions struct {
	configPath string
	limit      uint
	columns    int
	theme      string
	outPath    string
	logFile    string
	logLevel   string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sectiongrid [sections.jsonl ...]",
		Short: "Select items from sections in a terminal grid",
		Long: `Select items from sections in a terminal grid.

Each file holds one JSON section per line:
  {"header": "Kitchen", "items": [{"name": "Chef"}, {"name": "Cook", "selected": true}]}

Without files the built-in demo sections are shown with a limit of 5.
Selected item names are printed one per line, or appended to --out as a JSON record.`,
		Example: `  sectiongrid
  sectiongrid staff.jsonl --limit 3
  sectiongrid a.jsonl b.jsonl --out picks.jsonl --theme light`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			viewerOpts := []bubbletea.ModelOption{
				bubbletea.WithTheme(lipgloss.ThemeByName(cfg.Theme)),
				bubbletea.WithColumns(cfg.Columns),
			}
			if clip := clipboard.NewSystem(); clip.Available() {
				viewerOpts = append(viewerOpts, bubbletea.WithClipboard(clip))
			}

			limit := sectiongrid.LimitFromPtr(cfg.Limit)
			if len(args) == 0 && cfg.Limit == nil {
				limit = sectiongrid.MaxSelected(demoLimit)
			}

			app := &App{
				Loader:     jsonl.NewLoader(),
				Viewer:     bubbletea.NewViewer(viewerOpts...),
				Saver:      jsonl.NewSaver(),
				Logger:     logger,
				Paths:      args,
				Limit:      limit,
				OutputPath: o.outPath,
				Stdout:     stdout,
			}
			return app.Run(cmd.Context())
		},
	}

	o.addFlags(cmd)

	return cmd
}

func (o *rootOptions) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "config file (default "+fs.DefaultConfigPath()+")")
	flags.UintVar(&o.limit, "limit", 0, "maximum number of selected items (default unlimited)")
	flags.IntVar(&o.columns, "columns", sectiongrid.DefaultColumns, "cells per row")
	flags.StringVar(&o.theme, "theme", sectiongrid.ThemeDark, "color theme: dark or light")
	flags.StringVar(&o.outPath, "out", "", "append the selection to this JSONL file instead of printing it")
	flags.StringVar(&o.logFile, "log-file", "", "log file (default "+fs.DefaultLogPath()+")")
	flags.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

// config merges flags over the config file over the defaults.
func (o *rootOptions) config(cmd *cobra.Command) (sectiongrid.Config, error) {
	path := o.configPath
	if path == "" {
		path = fs.DefaultConfigPath()
	}
	cfg, err := toml.Load(path, sectiongrid.DefaultConfig())
	if err != nil {
		return sectiongrid.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	flags := cmd.Flags()
	if flags.Changed("limit") {
		n := o.limit
		cfg.Limit = &n
	}
	if flags.Changed("columns") {
		cfg.Columns = o.columns
	}
	if flags.Changed("theme") {
		cfg.Theme = o.theme
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))

	if err := cfg.Validate(); err != nil {
		return sectiongrid.Config{}, err
	}
	return cfg, nil
}

// newLogger opens the log file in append mode and returns a logfmt logger
// writing to it. The terminal belongs to the TUI, so nothing is logged there.
func newLogger(cfg sectiongrid.LogConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	path := cfg.File
	if path == "" {
		path = fs.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "sectiongrid",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	return logger, func() { _ = f.Close() }, nil
}
