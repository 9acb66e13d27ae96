package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/nibzard/tasktracker-go/internal/ui"
)

// tuiCommand launches the interactive viewer.
func (a *app) tuiCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	refresh := fs.Duration("refresh", ui.DefaultRefreshInterval, "reload interval, 0 disables")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *refresh < 0 {
		return fmt.Errorf("tui: refresh interval must not be negative, got %s", *refresh)
	}

	store, err := a.openStorage()
	if err != nil {
		return err
	}
	return ui.RunTUI(ctx, store,
		ui.WithRefreshInterval(*refresh),
		ui.WithColor(a.cfg.Color),
		ui.WithSource(store.Path()),
	)
}
