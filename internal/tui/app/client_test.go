package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/trip-planner/internal/config"
	"github.com/cristianoliveira/trip-planner/internal/core"
	"github.com/cristianoliveira/trip-planner/internal/model"
	"github.com/cristianoliveira/trip-planner/internal/settings"
	"github.com/cristianoliveira/trip-planner/internal/tui/render"
	"github.com/cristianoliveira/trip-planner/internal/tui/state"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PLANNER_CONFIG_DIR", dir)
	t.Setenv("PLANNER_STATE_DIR", t.TempDir())
	config.Load()
	return dir
}

type recordingRunner struct {
	ran tea.Model
	err error
}

func (r *recordingRunner) Run(m tea.Model) error {
	r.ran = m
	return r.err
}

func TestNewDefaultClientUsesDefaultRunner(t *testing.T) {
	client := NewDefaultClient(nil)
	require.IsType(t, &DefaultProgramRunner{}, client.programRunner)
}

func TestDefaultClientCreatesShellModel(t *testing.T) {
	setupConfig(t)
	client := NewDefaultClient(&recordingRunner{})
	m := client.CreateModel(core.New(model.NewManager()))
	require.IsType(t, &state.Model{}, m)
}

func TestDefaultClientRunProgramUsesInjectedRunner(t *testing.T) {
	setupConfig(t)
	runner := &recordingRunner{}
	client := NewDefaultClient(runner)
	m := client.CreateModel(core.New(model.NewManager()))

	require.NoError(t, client.RunProgram(m))
	assert.Same(t, m, runner.ran)
}

func TestDefaultClientRunProgramPropagatesError(t *testing.T) {
	dir := setupConfig(t)
	want := errors.New("no tty")
	client := NewDefaultClient(&recordingRunner{err: want})

	err := client.RunProgram(client.CreateModel(core.New(model.NewManager())))
	require.ErrorIs(t, err, want)
	assert.NoFileExists(t, filepath.Join(dir, "shell.toml"))
}

func TestDefaultClientRestoresAndSavesSettings(t *testing.T) {
	dir := setupConfig(t)
	require.NoError(t, settings.Save(&settings.Settings{ActiveTab: settings.TabContacts, AgendaWidthPercent: 50}))

	client := NewDefaultClient(&recordingRunner{})
	m := client.CreateModel(core.New(model.NewManager()))
	shell := m.(*state.Model)
	assert.Equal(t, render.TabContacts, shell.ActiveTab())

	_, _ = shell.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NoError(t, client.RunProgram(shell))

	saved, err := settings.Load()
	require.NoError(t, err)
	assert.Equal(t, settings.TabActivities, saved.ActiveTab)
	assert.Equal(t, 50, saved.AgendaWidthPercent)
	assert.FileExists(t, filepath.Join(dir, "shell.toml"))
}

func TestDefaultClientFallsBackOnBadSettings(t *testing.T) {
	dir := setupConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shell.toml"), []byte("agenda_width_percent = 5\n"), 0o644))

	m := NewDefaultClient(&recordingRunner{}).CreateModel(core.New(model.NewManager()))
	assert.Equal(t, render.TabHelp, m.(*state.Model).ActiveTab())
}
