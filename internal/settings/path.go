package settings

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/trip-planner/internal/config"
)

const shellSettingsFilename = "shell" + FileExtTOML

// getSettingsPath returns the filesystem path for the shell settings file.
// It respects the optional shell_settings_path override.
func getSettingsPath() string {
	if override := config.Get("shell_settings_path", ""); override != "" {
		return override
	}
	return filepath.Join(resolveConfigDir(), shellSettingsFilename)
}

// resolveConfigDir returns the configured planner config directory,
// falling back to the XDG default if needed.
func resolveConfigDir() string {
	if configDir := config.Get("config_dir", ""); configDir != "" {
		return configDir
	}
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfigHome, "planner")
}
