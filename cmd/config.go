package cmd

import (
	"fmt"
	"io"

	"github.com/nibzard/tasktracker-go/internal/config"
)

// configCommand prints the effective configuration and where each value came
// from.
func (a *app) configCommand(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	printConfig(a.stdout, a.sources)
	return nil
}

func printConfig(w io.Writer, cws *config.ConfigWithSources) {
	fmt.Fprintln(w, "Configuration")
	fmt.Fprintln(w)
	for _, field := range cws.SortedFields() {
		fmt.Fprintf(w, "  %-16s %-40s (%s)\n", field, cws.Config.Value(field), cws.Sources[field])
	}
	fmt.Fprintln(w)
	if len(cws.Files) == 0 {
		fmt.Fprintln(w, "Config files: none")
	} else {
		fmt.Fprintln(w, "Config files:")
		for _, f := range cws.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	if len(cws.Unknown) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Unknown keys:")
		for _, k := range cws.Unknown {
			fmt.Fprintf(w, "  %s\n", k)
		}
	}
}

// initConfigCommand prints an example config file.
func (a *app) initConfigCommand(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	_, err := io.WriteString(a.stdout, config.ExampleConfig())
	return err
}
