// Package app provides TUI application adapters for command wiring.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/trip-planner/internal/colors"
	"github.com/cristianoliveira/trip-planner/internal/core"
	"github.com/cristianoliveira/trip-planner/internal/settings"
	"github.com/cristianoliveira/trip-planner/internal/tui/state"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	Run(model tea.Model) error
}

// DefaultProgramRunner wraps tea.NewProgram in the alternate screen.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program with the given model.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Client defines dependencies needed by the shell command.
type Client interface {
	CreateModel(c *core.Core) tea.Model
	RunProgram(model tea.Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	programRunner ProgramRunner
}

// NewDefaultClient creates a default TUI client adapter.
// If programRunner is nil, a DefaultProgramRunner will be used.
func NewDefaultClient(programRunner ProgramRunner) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{programRunner: programRunner}
}

// CreateModel builds the shell model around c, restoring saved preferences.
func (d *DefaultClient) CreateModel(c *core.Core) tea.Model {
	prefs, err := settings.Load()
	if err != nil {
		colors.Warning(fmt.Sprintf("Using default shell settings: %v", err))
		prefs = settings.DefaultSettings()
	}
	return state.NewModel(c, state.WithSettings(prefs))
}

// settingsProvider is implemented by models whose preferences outlive the session.
type settingsProvider interface {
	Settings() *settings.Settings
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
// Preferences of the model are saved once the program ends.
func (d *DefaultClient) RunProgram(model tea.Model) error {
	if err := d.programRunner.Run(model); err != nil {
		colors.Error(fmt.Sprintf("Error running shell: %v", err))
		return err
	}
	if sp, ok := model.(settingsProvider); ok {
		if err := settings.Save(sp.Settings()); err != nil {
			colors.Warning(fmt.Sprintf("Failed to save shell settings: %v", err))
		}
	}
	return nil
}
