// Package cmd implements the CLI command structure for tasktracker.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasktracker-go/internal/config"
	"github.com/nibzard/tasktracker-go/internal/logging"
	"github.com/nibzard/tasktracker-go/internal/presenter"
	"github.com/nibzard/tasktracker-go/internal/storage"
)

// Version is set via ldflags at build time.
var Version = "dev"

const progName = "tasktracker"

// Run executes the tasktracker CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	sources *config.ConfigWithSources
	logger  *log.Logger
	out     presenter.Presenter
	stdout  io.Writer
	stderr  io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config

	logger := logging.NewFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, stderr)
	for _, key := range cws.Unknown {
		logger.Warn("unknown config key", "key", key)
	}

	format, err := presenter.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	a := &app{
		cfg:     cfg,
		sources: cws,
		logger:  logger,
		out:     newPresenter(format, stdout, stderr, cfg.Color),
		stdout:  stdout,
		stderr:  stderr,
	}

	if *help {
		return a.out.ShowHelp()
	}
	if *showVersion {
		return a.versionCommand()
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return a.out.ShowHelp()
	}

	subcommand, rest := remaining[0], remaining[1:]
	switch subcommand {
	case "help", "--help", "-h":
		return a.out.ShowHelp()
	case "version", "--version", "-v":
		return a.versionCommand()
	case "tui":
		return a.fail(a.tuiCommand(ctx, rest))
	case "export":
		return a.fail(a.exportCommand(rest))
	case "config":
		return a.fail(a.configCommand(rest))
	case "init-config":
		return a.fail(a.initConfigCommand(rest))
	case "doctor":
		return a.fail(a.doctorCommand(rest))
	default:
		return a.fail(a.taskCommand(remaining))
	}
}

func newPresenter(format presenter.Format, stdout, stderr io.Writer, color bool) presenter.Presenter {
	if format == presenter.FormatJSON {
		return presenter.NewJSON(stdout, stderr, progName)
	}
	return presenter.NewText(stdout, stderr, progName, color)
}

// openStorage loads the configured data file.
func (a *app) openStorage() (*storage.FileStorage, error) {
	path, err := a.cfg.DataPath()
	if err != nil {
		return nil, err
	}
	return storage.OpenFileStorage(path,
		storage.WithSchemaValidation(a.cfg.ValidateSchema),
		storage.WithLogger(a.logger),
	)
}

// fail shows err through the presenter and marks it as reported.
func (a *app) fail(err error) error {
	if err == nil {
		return nil
	}
	if cause := errors.Unwrap(err); cause != nil {
		a.logger.Debug("command failed", "err", err, "cause", cause)
	}
	if showErr := a.out.ShowError(err); showErr != nil {
		return showErr
	}
	return &reportedError{err: err}
}

func (a *app) versionCommand() error {
	_, err := fmt.Fprintf(a.stdout, "%s version %s\n", progName, Version)
	return err
}
