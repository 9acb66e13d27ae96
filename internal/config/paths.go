package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nibzard/tasktracker-go/internal/trackerdir"
)

// DataPath resolves the data file location. An empty DataFile means
// ~/.roadmap-task-tracker.json. The home directory is only looked up when
// the path needs it, so commands that never open the data file work
// without one.
func (c *Config) DataPath() (string, error) {
	if c.DataFile == "" {
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		return trackerdir.DataPath(home), nil
	}
	return expandPath(c.DataFile)
}

// expandPath expands $VAR references and a leading ~ in p.
func expandPath(p string) (string, error) {
	expanded := os.ExpandEnv(p)
	if expanded != "~" && !hasHomePrefix(expanded) {
		return expanded, nil
	}
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	if expanded == "~" {
		return home, nil
	}
	return filepath.Join(home, expanded[2:]), nil
}

func hasHomePrefix(p string) bool {
	return strings.HasPrefix(p, "~/") || (runtime.GOOS == "windows" && strings.HasPrefix(p, `~\`))
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrHomePathNotFound
	}
	return home, nil
}
