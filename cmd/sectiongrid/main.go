// Command sectiongrid shows sections of items in a terminal grid and lets the
// user pick a capped number of them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/sectiongrid"
	"golang.org/x/sync/errgroup"
)

// ErrNoItems is returned when the loaded sections contain nothing to select.
var ErrNoItems = errors.New("no items to select")

// App encapsulates the application logic for testing.
type App struct {
	Loader sectiongrid.SectionLoader
	Viewer sectiongrid.Viewer
	Saver  sectiongrid.SelectionSaver
	Logger *log.Logger

	Paths      []string // Section files; the demo sections are used when empty
	Limit      sectiongrid.Limit
	OutputPath string // Append the selection here instead of printing it
	Stdout     io.Writer
	Now        func() time.Time
}

// Run loads the sections, lets the user select items, and writes the result.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger()

	sections, err := a.load(ctx)
	if err != nil {
		return err
	}
	if !hasItems(sections) {
		return ErrNoItems
	}
	logger.Info("sections loaded", "sections", len(sections), "limit", a.Limit)

	sel := sectiongrid.NewSelector(
		sectiongrid.WithSections(sections),
		sectiongrid.WithLimit(a.Limit),
	)
	stopChanged := sel.OnSelectionChanged(func(ev sectiongrid.SelectionChanged) {
		logger.Debug("selection changed", "count", ev.Count, "version", ev.Version)
	})
	defer stopChanged()
	stopLimit := sel.OnLimitReached(func(ev sectiongrid.LimitReached) {
		logger.Info("limit reached", "section", ev.At.Section, "item", ev.At.Item, "limit", ev.Limit)
	})
	defer stopLimit()

	if err := a.Viewer.View(ctx, sel); err != nil {
		return err
	}

	rec := sectiongrid.NewSelectionRecord(sel, a.now())
	if a.OutputPath == "" {
		for _, name := range sectiongrid.Names(rec.Items) {
			if _, err := fmt.Fprintln(a.stdout(), name); err != nil {
				return fmt.Errorf("write selection: %w", err)
			}
		}
		return nil
	}

	if err := a.Saver.Save(a.OutputPath, rec); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	logger.Info("selection saved", "path", a.OutputPath, "count", len(rec.Items))
	return nil
}

// load reads every path concurrently and concatenates the sections in path order.
func (a *App) load(ctx context.Context) ([]sectiongrid.Section, error) {
	if len(a.Paths) == 0 {
		return demoSections(), nil
	}

	results := make([][]sectiongrid.Section, len(a.Paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range a.Paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sections, err := a.Loader.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			results[i] = sections
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []sectiongrid.Section
	for _, sections := range results {
		all = append(all, sections...)
	}
	return all, nil
}

func (a *App) logger() *log.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return log.New(io.Discard)
}

func (a *App) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func hasItems(sections []sectiongrid.Section) bool {
	for _, s := range sections {
		if len(s.Items) > 0 {
			return true
		}
	}
	return false
}

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, sectiongrid.ErrCancelled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
