package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/trip-planner/internal/colors"
	"github.com/cristianoliveira/trip-planner/internal/model"
	"gopkg.in/yaml.v3"
)

// YAMLStorage keeps the planner in a single YAML document.
type YAMLStorage struct {
	path    string
	lockDir string
}

// NewYAMLStorage creates a YAML backend writing to path. The parent directory
// is created if needed.
func NewYAMLStorage(path string) (*YAMLStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("yaml storage: path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return nil, fmt.Errorf("yaml storage: create directory: %w", err)
	}
	return &YAMLStorage{path: path, lockDir: path + ".lock"}, nil
}

// Path returns the file backing the storage.
func (s *YAMLStorage) Path() string {
	return s.path
}

// Load reads the planner file. A missing or empty file is an empty planner.
func (s *YAMLStorage) Load(ctx context.Context) (*model.Snapshot, error) {
	var snap *model.Snapshot
	err := WithLock(ctx, s.lockDir, func() error {
		data, err := os.ReadFile(s.path)
		if os.IsNotExist(err) {
			snap = emptySnapshot()
			return nil
		}
		if err != nil {
			return fmt.Errorf("yaml storage: read %s: %w", s.path, err)
		}
		snap, err = decodeSnapshot(data)
		if err != nil {
			return fmt.Errorf("yaml storage: decode %s: %w", s.path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	colors.Debug(fmt.Sprintf("yaml storage: loaded %s", s.path))
	return snap, nil
}

// Save writes s to a temporary file and renames it over the planner file.
func (s *YAMLStorage) Save(ctx context.Context, snap *model.Snapshot) error {
	if snap == nil {
		snap = emptySnapshot()
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("yaml storage: encode: %w", err)
	}
	return WithLock(ctx, s.lockDir, func() error {
		tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
		if err != nil {
			return fmt.Errorf("yaml storage: create temp file: %w", err)
		}
		tmpName := tmp.Name()
		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("yaml storage: write temp file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmpName)
			return fmt.Errorf("yaml storage: close temp file: %w", err)
		}
		if err := os.Chmod(tmpName, FileModeFile); err != nil {
			os.Remove(tmpName)
			return fmt.Errorf("yaml storage: chmod temp file: %w", err)
		}
		if err := os.Rename(tmpName, s.path); err != nil {
			os.Remove(tmpName)
			return fmt.Errorf("yaml storage: replace %s: %w", s.path, err)
		}
		return nil
	})
}

// Close is a no-op; the file is only open during Load and Save.
func (s *YAMLStorage) Close() error {
	return nil
}

func decodeSnapshot(data []byte) (*model.Snapshot, error) {
	snap := emptySnapshot()
	if len(data) == 0 {
		return snap, nil
	}
	if err := yaml.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	return snap, nil
}
