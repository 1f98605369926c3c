package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/trip-planner/internal/config"
	"github.com/cristianoliveira/trip-planner/internal/domain"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	stateDir := t.TempDir()
	t.Setenv("PLANNER_CONFIG_DIR", t.TempDir())
	t.Setenv("PLANNER_STATE_DIR", stateDir)
	config.Load()
	return stateDir
}

func newFileLogger(t *testing.T, level string) (Logger, string) {
	t.Helper()
	dir := t.TempDir()
	l, err := Init(Config{Enabled: true, Level: level, MaxFiles: 3, Dir: dir, Command: "planner test", PID: 42})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Shutdown() })
	return l, l.(*fileLogger).path()
}

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), scanner.Text())
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestFromGlobalConfig(t *testing.T) {
	setupConfig(t)
	t.Setenv("PLANNER_LOGGING_ENABLED", "true")
	t.Setenv("PLANNER_LOGGING_LEVEL", "warn")
	t.Setenv("PLANNER_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, 5, cfg.MaxFiles)
	assert.Equal(t, os.Getpid(), cfg.PID)

	t.Setenv("PLANNER_QUIET", "true")
	config.Load()
	assert.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("PLANNER_DEBUG", "true")
	config.Load()
	assert.Equal(t, "debug", FromGlobalConfig().Level, "debug wins over quiet")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]clog.Level{
		"debug":   clog.DebugLevel,
		"INFO":    clog.InfoLevel,
		"warn":    clog.WarnLevel,
		"warning": clog.WarnLevel,
		" error ": clog.ErrorLevel,
		"verbose": clog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestLogDirUnderStateDir(t *testing.T) {
	stateDir := setupConfig(t)

	dir, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stateDir, "logs"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabledDiscards(t *testing.T) {
	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, noopLogger{}, l)
	l.With("verb", "add").Info("ignored")
	assert.NoError(t, l.Shutdown())
}

func TestCommandEntriesAreJSON(t *testing.T) {
	l, path := newFileLogger(t, "info")

	l.With("verb", "add", "second", "day").Info("command executed", "outcome", "ok")
	l.Debug("below level")
	require.NoError(t, l.Shutdown())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "command executed", e["msg"])
	assert.Equal(t, "info", e["level"])
	assert.Equal(t, "add", e["verb"])
	assert.Equal(t, "day", e["second"])
	assert.Equal(t, "ok", e["outcome"])
	assert.Equal(t, "planner test", e["command"])
	assert.EqualValues(t, 42, e["pid"])
	assert.Contains(t, filepath.Base(path), "planner_test.log")
}

func TestShutdownStopsWriting(t *testing.T) {
	l, path := newFileLogger(t, "debug")
	child := l.With("verb", "list")
	require.NoError(t, l.Shutdown())
	require.NoError(t, l.Shutdown())

	child.Info("after shutdown")
	assert.Empty(t, readEntries(t, path))
}

func TestCommandLineIsMasked(t *testing.T) {
	l, path := newFileLogger(t, "debug")

	l.Debug("command rejected",
		"input", "add contact n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 t/friends",
		"error", "Invalid command format!")
	require.NoError(t, l.Shutdown())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "add contact n/John Doe p/[REDACTED] e/[REDACTED] a/[REDACTED] t/friends", entries[0]["input"])
}

func TestPersonalKeysAreRedacted(t *testing.T) {
	r := newRedactor()
	got := r.redact([]any{
		"phone", "98765432",
		"contact_email", "johnd@example.com",
		"Address", "Clementi",
		"name", "John Doe",
		"line", "add accommodation n/Hotel a/10 Bayfront Ave p/66888868",
		"input", 12,
		"dangling",
	})
	assert.Equal(t, []any{
		"phone", redacted,
		"contact_email", redacted,
		"Address", redacted,
		"name", "John Doe",
		"line", "add accommodation n/Hotel a/[REDACTED] p/[REDACTED]",
		"input", 12,
		"dangling",
	}, got)
}

func TestRedactDoesNotModifyInput(t *testing.T) {
	pairs := []any{"phone", "98765432"}
	_ = newRedactor().redact(pairs)
	assert.Equal(t, "98765432", pairs[1])
	assert.Empty(t, newRedactor().redact(nil))
}

func TestEntityDescriptionsAreRedacted(t *testing.T) {
	contact := domain.Contact{
		Name: "John Doe", Phone: "98765432", Email: "johnd@example.com",
		Address: "311, Clementi Ave 2", Tags: []string{"friends"},
	}
	activity := domain.Activity{Name: "Night Safari", Address: "80 Mandai Lake Rd", Duration: 150, Phone: "62693411"}
	r := newRedactor()

	msg := r.redactMessage("New contact added: " + contact.String())
	assert.NotContains(t, msg, "98765432")
	assert.NotContains(t, msg, "johnd@example.com")
	assert.NotContains(t, msg, "Clementi")
	assert.True(t, strings.HasPrefix(msg, "New contact added: John Doe Phone: [REDACTED] Email: [REDACTED] Address: [REDACTED] Tags: "), msg)

	msg = r.redactMessage(activity.String())
	assert.True(t, strings.HasPrefix(msg, "Night Safari Address: [REDACTED] Duration: 150min Phone: [REDACTED] Tags: "), msg)
	assert.NotContains(t, msg, "Mandai")
	assert.NotContains(t, msg, "62693411")

	assert.Equal(t, "3 day(s) added", r.redactMessage("3 day(s) added"))
}

func TestMessagesAreRedactedInFile(t *testing.T) {
	l, path := newFileLogger(t, "info")
	l.Info("Deleted contact: Ann Phone: 12345 Email: ann@example.com Address: Jurong Tags: ")
	require.NoError(t, l.Shutdown())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "Deleted contact: Ann Phone: [REDACTED] Email: [REDACTED] Address: [REDACTED] Tags: ", entries[0]["msg"])
}

func TestRotationKeepsNewestPlannerLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		p := filepath.Join(dir, fmt.Sprintf("%s%d.log", filePrefix, i))
		require.NoError(t, os.WriteFile(p, nil, 0600))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, ts, ts))
	}
	other := filepath.Join(dir, "notes.log")
	require.NoError(t, os.WriteFile(other, nil, 0600))

	require.NoError(t, rotate(dir, 2))

	left, err := filepath.Glob(filepath.Join(dir, filePrefix+"*.log"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, filePrefix+"3.log"),
		filepath.Join(dir, filePrefix+"4.log"),
	}, left)
	assert.FileExists(t, other)

	assert.NoError(t, rotate(dir, 0))
	assert.Error(t, rotate(filepath.Join(dir, "missing"), 1))
}

func TestInitRotatesToMaxFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, filePrefix+"old.log")
	require.NoError(t, os.WriteFile(old, nil, 0600))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	l, err := Init(Config{Enabled: true, MaxFiles: 1, Dir: dir, Command: "planner"})
	require.NoError(t, err)
	defer l.Shutdown()

	assert.NoFileExists(t, old)
	assert.FileExists(t, l.(*fileLogger).path())
}

func TestGlobalLifecycle(t *testing.T) {
	setupConfig(t)
	t.Setenv("PLANNER_LOGGING_ENABLED", "true")
	config.Load()
	t.Cleanup(func() { _ = ShutdownGlobal() })

	assert.IsType(t, noopLogger{}, GetGlobal())
	require.NoError(t, InitGlobal())
	path := CurrentLogFile()
	require.NotEmpty(t, path)

	require.NoError(t, InitGlobal())
	assert.Equal(t, path, CurrentLogFile(), "second InitGlobal keeps the first logger")

	Info("command executed", "input", "add contact n/Ann p/12345 e/ann@example.com a/Jurong")
	require.NoError(t, ShutdownGlobal())
	assert.Empty(t, CurrentLogFile())
	assert.IsType(t, noopLogger{}, GetGlobal())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "12345")
	assert.NotContains(t, string(data), "ann@example.com")
}
