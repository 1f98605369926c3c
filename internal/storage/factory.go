package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/trip-planner/internal/colors"
	"github.com/cristianoliveira/trip-planner/internal/config"
	"github.com/cristianoliveira/trip-planner/internal/storage/sqlite"
)

const (
	// BackendYAML selects the YAML file backend.
	BackendYAML = "yaml"
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"
	// BackendMemory keeps the planner for the lifetime of the process only.
	BackendMemory = "memory"

	plannerYAMLFileName = "planner.yaml"
	plannerDBFileName   = "planner.db"
)

var _ Storage = (*sqlite.SQLiteStorage)(nil)

// NewFromConfig creates a storage backend based on configuration.
func NewFromConfig() (Storage, error) {
	config.Load()
	backend := config.Get("storage_backend", BackendYAML)
	return NewForBackend(backend)
}

// NewForBackend creates a storage backend for the provided backend name.
// Unknown backends and SQLite failures fall back to YAML with a warning.
func NewForBackend(backend string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendYAML:
		return newYAMLInStateDir()
	case BackendMemory:
		return NewMemoryStorage(), nil
	case BackendSQLite:
		stateDir, err := GetStateDir()
		if err != nil {
			return nil, err
		}
		dbPath := filepath.Join(stateDir, plannerDBFileName)
		yamlPath := filepath.Join(stateDir, plannerYAMLFileName)

		dbExists, err := pathExists(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to inspect sqlite database, falling back to yaml: %v", err))
			return newYAMLInStateDir()
		}

		sqliteStorage, err := sqlite.NewSQLiteStorage(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to yaml: %v", err))
			return newYAMLInStateDir()
		}
		if !dbExists {
			if err := importYAML(context.Background(), yamlPath, sqliteStorage); err != nil {
				_ = sqliteStorage.Close()
				_ = os.Remove(dbPath)
				colors.Warning(fmt.Sprintf("sqlite import failed, falling back to yaml: %v", err))
				return newYAMLInStateDir()
			}
		}
		return sqliteStorage, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to yaml", backend))
		return newYAMLInStateDir()
	}
}

// GetStateDir returns the configured state directory.
func GetStateDir() (string, error) {
	if dir := os.Getenv(config.EnvPrefix + "STATE_DIR"); dir != "" {
		return dir, nil
	}
	config.Load()
	dir := config.Get("state_dir", "")
	if dir == "" {
		return "", fmt.Errorf("storage: %sSTATE_DIR not configured", config.EnvPrefix)
	}
	return dir, nil
}

func newYAMLInStateDir() (Storage, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return nil, err
	}
	return NewYAMLStorage(filepath.Join(stateDir, plannerYAMLFileName))
}

// importYAML copies an existing YAML planner into a freshly created database
// so switching backends keeps the trip.
func importYAML(ctx context.Context, yamlPath string, dst Storage) error {
	hasData, err := fileHasContent(yamlPath)
	if err != nil {
		return fmt.Errorf("check yaml data: %w", err)
	}
	if !hasData {
		return nil
	}

	colors.Info("Detected a YAML planner. Importing it into SQLite...")
	src, err := NewYAMLStorage(yamlPath)
	if err != nil {
		return err
	}
	snap, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if err := dst.Save(ctx, snap); err != nil {
		return err
	}
	colors.Success(fmt.Sprintf("SQLite import complete: %d contacts, %d activities, %d accommodations, %d days",
		len(snap.Contacts), len(snap.Activities), len(snap.Accommodations), len(snap.Days)))
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func fileHasContent(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("expected file but found directory: %s", path)
	}
	return info.Size() > 0, nil
}
