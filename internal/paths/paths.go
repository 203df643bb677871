// Package paths resolves taskman's data and config locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "TASKMAN_DATA_DIR"

// DataDir returns the directory holding taskman's data files. The
// TASKMAN_DATA_DIR environment variable takes precedence over the
// default under the user's home.
func DataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "taskman"), nil
}

// ConfigPath returns the path to the taskman config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "taskman", "taskman.toml"), nil
}
