// Package settings persists shell preferences between sessions.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644
	// FileExtTOML is the settings file extension.
	FileExtTOML = ".toml"
)

const (
	// DefaultAgendaWidthPercent is the share of the screen given to the agenda pane.
	DefaultAgendaWidthPercent = 45
	minAgendaWidthPercent     = 20
	maxAgendaWidthPercent     = 80
)

// Settings holds shell preferences persisted to disk.
//
// Settings are stored at {config_dir}/shell.toml:
//
//	active_tab = "activities"
//	agenda_width_percent = 45
type Settings struct {
	// ActiveTab is the info pane tab shown when the shell opens.
	// Missing or unknown values resolve to DefaultTab.
	ActiveTab Tab `toml:"active_tab"`

	// AgendaWidthPercent is the agenda pane width, between 20 and 80.
	AgendaWidthPercent int `toml:"agenda_width_percent"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		ActiveTab:          DefaultTab(),
		AgendaWidthPercent: DefaultAgendaWidthPercent,
	}
}

// Load reads settings from the config directory.
// If the settings file does not exist, returns default settings.
func Load() (*Settings, error) {
	settingsPath := getSettingsPath()

	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Save writes settings to the config directory, creating it if needed.
func Save(s *Settings) error {
	if err := Validate(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	settingsPath := getSettingsPath()
	if err := os.MkdirAll(filepath.Dir(settingsPath), FileModeDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(settingsPath), ".shell-*"+FileExtTOML)
	if err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Chmod(tmpName, FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmpName, settingsPath); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Validate normalizes s in place and rejects values that cannot be fixed.
// Preconditions: settings must be non-nil.
func Validate(s *Settings) error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	s.ActiveTab = NormalizeTab(string(s.ActiveTab))
	if s.AgendaWidthPercent == 0 {
		s.AgendaWidthPercent = DefaultAgendaWidthPercent
	}
	if s.AgendaWidthPercent < minAgendaWidthPercent || s.AgendaWidthPercent > maxAgendaWidthPercent {
		return fmt.Errorf("agenda_width_percent must be between %d and %d, got %d",
			minAgendaWidthPercent, maxAgendaWidthPercent, s.AgendaWidthPercent)
	}
	return nil
}
