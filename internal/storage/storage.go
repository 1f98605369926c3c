// Package storage persists planner snapshots. It offers a YAML file backend,
// a SQLite backend and an in-memory backend, selected by configuration.
package storage

import (
	"context"
	"os"

	"github.com/cristianoliveira/trip-planner/internal/model"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644
)

// Storage loads and saves the whole planner at once.
type Storage interface {
	// Load returns the stored planner. A backend with nothing stored yet
	// returns an empty snapshot and no error.
	Load(ctx context.Context) (*model.Snapshot, error)
	// Save replaces the stored planner with s.
	Save(ctx context.Context, s *model.Snapshot) error
	Close() error
}

func emptySnapshot() *model.Snapshot {
	return &model.Snapshot{Version: model.SnapshotVersion}
}
