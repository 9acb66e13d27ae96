// Package trackerdir provides well-known file names and path helpers.
package trackerdir

import "path/filepath"

const (
	// Dir is the name of the per-user tasktracker directory.
	Dir = ".tasktracker"

	// DefaultDataFile is the data file name, placed directly in the home directory.
	DefaultDataFile = ".roadmap-task-tracker.json"

	// DefaultConfigFile is the config file name.
	DefaultConfigFile = "tasktracker.toml"

	// HiddenConfigFile is the alternative project config file name.
	HiddenConfigFile = ".tasktracker.toml"

	// AppName is the directory name used under OS config directories.
	AppName = "tasktracker"
)

// DataPath returns the default data file path within a home directory.
func DataPath(home string) string {
	return filepath.Join(home, DefaultDataFile)
}

// UserConfigPath returns ~/.tasktracker/tasktracker.toml for home.
func UserConfigPath(home string) string {
	return filepath.Join(home, Dir, DefaultConfigFile)
}

// OSConfigPath returns <configDir>/tasktracker/tasktracker.toml.
func OSConfigPath(configDir string) string {
	return filepath.Join(configDir, AppName, DefaultConfigFile)
}

// ProjectConfigPaths returns the project config candidates within dir, in
// lookup order.
func ProjectConfigPaths(dir string) []string {
	return []string{
		filepath.Join(dir, DefaultConfigFile),
		filepath.Join(dir, HiddenConfigFile),
	}
}
