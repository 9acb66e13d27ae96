package config

import "errors"

// ErrHomePathNotFound is returned when the default data file location
// cannot be resolved because the home directory is unknown.
var ErrHomePathNotFound = errors.New("could not discover user's home directory")

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
	// Unknown lists keys found in config files that no field uses.
	Unknown []string
}

// Default values.
const (
	DefaultIDStrategy     = "max"
	DefaultValidateSchema = true
	DefaultOutput         = "text"
	DefaultColor          = true
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
)

// Config holds the full configuration for tasktracker.
type Config struct {
	// Data file; empty means ~/.roadmap-task-tracker.json
	DataFile string `toml:"data_file"`

	// How new task ids are chosen: "max" or "count"
	IDStrategy string `toml:"id_strategy"`

	// Validate the data file against its JSON Schema on load
	ValidateSchema bool `toml:"validate_schema"`

	// Output
	Output string `toml:"output"`
	Color  bool   `toml:"color"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// fieldNames returns the list of configurable field names for source tracking.
func fieldNames() []string {
	return []string{
		"data_file",
		"id_strategy",
		"validate_schema",
		"output",
		"color",
		"log_level",
		"log_format",
		"log_timestamps",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DataFile = ""
	cfg.IDStrategy = DefaultIDStrategy
	cfg.ValidateSchema = DefaultValidateSchema
	cfg.Output = DefaultOutput
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
}

// Default returns a config holding only built-in defaults.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}
