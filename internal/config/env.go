package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables and updates
// source tracking.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TASKTRACKER_DATA_FILE"); v != "" {
		cfg.DataFile = v
		set("data_file")
	}
	if v := os.Getenv("TASKTRACKER_ID_STRATEGY"); v != "" {
		cfg.IDStrategy = v
		set("id_strategy")
	}
	if v := os.Getenv("TASKTRACKER_VALIDATE_SCHEMA"); v != "" {
		cfg.ValidateSchema = boolFromString(v)
		set("validate_schema")
	}
	if v := os.Getenv("TASKTRACKER_OUTPUT"); v != "" {
		cfg.Output = v
		set("output")
	}
	// https://no-color.org: any non-empty value disables color
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = false
		set("color")
	}
	if v := os.Getenv("TASKTRACKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("TASKTRACKER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("TASKTRACKER_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
