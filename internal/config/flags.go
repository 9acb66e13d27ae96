package config

import (
	"flag"
)

// flagFields maps flag names to the config field they set.
var flagFields = map[string]string{
	"data-file":       "data_file",
	"id-strategy":     "id_strategy",
	"validate-schema": "validate_schema",
	"output":          "output",
	"no-color":        "color",
	"log-level":       "log_level",
	"log-format":      "log_format",
	"log-timestamps":  "log_timestamps",
}

// parseFlags defines the global flags on fs, parses args and records which
// flags were explicitly set.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasktracker", flag.ContinueOnError)
	}

	var noColor bool
	fs.StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "Path to the data file")
	fs.StringVar(&cfg.IDStrategy, "id-strategy", cfg.IDStrategy, "How new ids are chosen (max, count)")
	fs.BoolVar(&cfg.ValidateSchema, "validate-schema", cfg.ValidateSchema, "Validate the data file against its JSON Schema")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output format (text, json)")
	fs.BoolVar(&noColor, "no-color", !cfg.Color, "Disable colored output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		field, ok := flagFields[f.Name]
		if !ok {
			return
		}
		if f.Name == "no-color" {
			cfg.Color = !noColor
		}
		if sources != nil {
			sources[field] = SourceFlag
		}
	})
	return nil
}
