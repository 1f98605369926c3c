package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/trip-planner/internal/core"
	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/model"
	"github.com/cristianoliveira/trip-planner/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ core.Store = (*YAMLStorage)(nil)
	_ core.Store = (*MemoryStorage)(nil)
	_ core.Store = (*sqlite.SQLiteStorage)(nil)
)

func setupStateDir(t *testing.T) string {
	t.Helper()
	stateDir := filepath.Join(t.TempDir(), "state")
	t.Setenv("PLANNER_CONFIG_DIR", filepath.Join(t.TempDir(), "config"))
	t.Setenv("PLANNER_STATE_DIR", stateDir)
	return stateDir
}

func sampleSnapshot(t *testing.T) *model.Snapshot {
	t.Helper()
	zoo, err := domain.NewActivity("Night Safari", "80 Mandai Lake Rd", "", 90, []string{"zoo"})
	require.NoError(t, err)
	alice, err := domain.NewContact("Alice", "98765432", "alice@example.com", "Clementi", []string{"friend"})
	require.NoError(t, err)
	mbs, err := domain.NewAccommodation("Marina Bay Sands", "10 Bayfront Ave", "66888868", nil)
	require.NoError(t, err)

	return &model.Snapshot{
		Version:        model.SnapshotVersion,
		Contacts:       []domain.Contact{alice},
		Activities:     []domain.Activity{zoo},
		Accommodations: []domain.Accommodation{mbs},
		Days: []model.DaySnapshot{
			{Entries: []model.EntrySnapshot{{Activity: zoo, Start: "1900"}}},
			{},
		},
	}
}

func TestYAMLStorageMissingFileIsEmpty(t *testing.T) {
	s, err := NewYAMLStorage(filepath.Join(t.TempDir(), "planner.yaml"))
	require.NoError(t, err)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SnapshotVersion, snap.Version)
	assert.Empty(t, snap.Contacts)
	assert.Empty(t, snap.Days)
}

func TestYAMLStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "planner.yaml")
	s, err := NewYAMLStorage(path)
	require.NoError(t, err)

	want := sampleSnapshot(t)
	require.NoError(t, s.Save(context.Background(), want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, FileModeFile, info.Mode().Perm())

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	m := model.NewManager()
	require.NoError(t, m.Restore(got))
	assert.Len(t, m.Days(), 2)
}

func TestYAMLStorageRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contacts: [oops"), FileModeFile))
	s, err := NewYAMLStorage(path)
	require.NoError(t, err)

	_, err = s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestYAMLStorageLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewYAMLStorage(filepath.Join(dir, "planner.yaml"))
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), sampleSnapshot(t)))
	require.NoError(t, s.Save(context.Background(), nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "planner.yaml", entries[0].Name())
}

func TestMemoryStorageCopiesSnapshots(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	empty, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Activities)

	snap := sampleSnapshot(t)
	require.NoError(t, s.Save(ctx, snap))
	snap.Contacts = nil

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Contacts, 1)
	assert.Equal(t, 1, s.Saves())
}

func TestMemoryStorageHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStorage()
	assert.ErrorIs(t, s.Save(ctx, sampleSnapshot(t)), context.Canceled)
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLockIsExclusive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "planner.lock")
	first := NewLock(dir)
	require.NoError(t, first.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 3*lockRetry)
	defer cancel()
	err := NewLock(dir).Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Release())
	require.NoError(t, WithLock(context.Background(), dir, func() error { return nil }))
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestLockReleasedWhenFnFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "planner.lock")
	err := WithLock(context.Background(), dir, func() error { return assert.AnError })
	require.ErrorIs(t, err, assert.AnError)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, WithLock(ctx, dir, func() error { return nil }))
}

func TestNewFromConfigSelectsYAMLByDefault(t *testing.T) {
	stateDir := setupStateDir(t)

	stor, err := NewFromConfig()
	require.NoError(t, err)
	require.IsType(t, &YAMLStorage{}, stor)
	assert.Equal(t, filepath.Join(stateDir, "planner.yaml"), stor.(*YAMLStorage).Path())
}

func TestNewFromConfigSelectsSQLiteBackend(t *testing.T) {
	setupStateDir(t)
	t.Setenv("PLANNER_STORAGE_BACKEND", "sqlite")

	stor, err := NewFromConfig()
	require.NoError(t, err)
	require.IsType(t, &sqlite.SQLiteStorage{}, stor)
	require.NoError(t, stor.Close())
}

func TestNewForBackendMemory(t *testing.T) {
	stor, err := NewForBackend(" Memory ")
	require.NoError(t, err)
	require.IsType(t, &MemoryStorage{}, stor)
}

func TestNewForBackendFallsBackToYAMLForUnknownBackend(t *testing.T) {
	setupStateDir(t)

	stor, err := NewForBackend("postgres")
	require.NoError(t, err)
	require.IsType(t, &YAMLStorage{}, stor)
}

func TestNewForBackendSQLiteImportsYAMLPlanner(t *testing.T) {
	stateDir := setupStateDir(t)
	ctx := context.Background()

	yamlStore, err := NewYAMLStorage(filepath.Join(stateDir, "planner.yaml"))
	require.NoError(t, err)
	want := sampleSnapshot(t)
	require.NoError(t, yamlStore.Save(ctx, want))

	stor, err := NewForBackend(BackendSQLite)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, stor.Close()) })

	got, err := stor.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewForBackendSQLiteSkipsImportWhenDatabaseExists(t *testing.T) {
	stateDir := setupStateDir(t)
	ctx := context.Background()

	existing, err := sqlite.NewSQLiteStorage(filepath.Join(stateDir, "planner.db"))
	require.NoError(t, err)
	require.NoError(t, existing.Close())

	yamlStore, err := NewYAMLStorage(filepath.Join(stateDir, "planner.yaml"))
	require.NoError(t, err)
	require.NoError(t, yamlStore.Save(ctx, sampleSnapshot(t)))

	stor, err := NewForBackend(BackendSQLite)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, stor.Close()) })

	got, err := stor.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Contacts)
}

func TestGetStateDirPrefersEnv(t *testing.T) {
	stateDir := setupStateDir(t)
	dir, err := GetStateDir()
	require.NoError(t, err)
	assert.Equal(t, stateDir, dir)
}
