package config

import (
	"flag"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/tasktracker-go/internal/logging"
	"github.com/nibzard/tasktracker-go/internal/trackerdir"
	"github.com/nibzard/tasktracker-go/internal/utils"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file
// 3. Project config file
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := LoadWithSources(fs, args)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	cws := &ConfigWithSources{
		Config:  Default(),
		Sources: make(map[string]ConfigSource),
	}
	for _, field := range fieldNames() {
		cws.Sources[field] = SourceDefault
	}

	// User config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cws, path, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	// Project config file (overrides user config)
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cws, path, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadFromEnv(cws.Config, cws.Sources)

	// CLI flags override everything
	if err := parseFlags(cws.Config, fs, args, cws.Sources); err != nil {
		return nil, err
	}

	if err := finalizeConfig(cws.Config); err != nil {
		return nil, err
	}
	return cws, nil
}

// loadConfigFile decodes TOML from path over cfg and records which keys the
// file defined.
func loadConfigFile(cws *ConfigWithSources, path string, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cws.Config)
	if err != nil {
		return err
	}
	for _, field := range fieldNames() {
		if md.IsDefined(field) {
			cws.Sources[field] = source
		}
	}
	for _, key := range md.Undecoded() {
		cws.Unknown = append(cws.Unknown, fmt.Sprintf("%s: %s", path, key.String()))
	}
	cws.Files = append(cws.Files, path)
	return nil
}

// finalizeConfig computes derived values and validates settings.
func finalizeConfig(cfg *Config) error {
	strategy, ok := utils.NormalizeChoice(cfg.IDStrategy, "max", "count")
	if !ok {
		return fmt.Errorf("invalid id_strategy %q, must be one of: max, count", cfg.IDStrategy)
	}
	cfg.IDStrategy = strategy

	output, ok := utils.NormalizeChoice(cfg.Output, "text", "json")
	if !ok {
		return fmt.Errorf("invalid output %q, must be one of: text, json", cfg.Output)
	}
	cfg.Output = output

	cfg.LogLevel = utils.NormalizeToken(cfg.LogLevel)
	if !logging.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", cfg.LogLevel)
	}
	cfg.LogFormat = utils.NormalizeToken(cfg.LogFormat)
	if !logging.ValidFormat(cfg.LogFormat) {
		return fmt.Errorf("invalid log_format %q, must be one of: text, json, logfmt", cfg.LogFormat)
	}
	return nil
}

// GetConfigFile returns the highest-priority config file that was read.
func (cws *ConfigWithSources) GetConfigFile() string {
	if len(cws.Files) == 0 {
		return ""
	}
	return cws.Files[len(cws.Files)-1]
}

// SortedFields returns the tracked field names in stable order.
func (cws *ConfigWithSources) SortedFields() []string {
	names := make([]string, 0, len(cws.Sources))
	for name := range cws.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Value returns the effective value of a tracked field for display.
func (c *Config) Value(field string) string {
	switch field {
	case "data_file":
		if p, err := c.DataPath(); err == nil {
			return p
		}
		if c.DataFile != "" {
			return c.DataFile
		}
		return "~/" + trackerdir.DefaultDataFile
	case "id_strategy":
		return c.IDStrategy
	case "validate_schema":
		return fmt.Sprint(c.ValidateSchema)
	case "output":
		return c.Output
	case "color":
		return fmt.Sprint(c.Color)
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return fmt.Sprint(c.LogTimestamps)
	}
	return ""
}
