package storage

import (
	"context"
	"sync"

	"github.com/cristianoliveira/trip-planner/internal/model"
	"gopkg.in/yaml.v3"
)

// MemoryStorage keeps the last saved planner in memory. Saved snapshots are
// deep-copied so later changes by the caller are not visible.
type MemoryStorage struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryStorage creates an empty in-memory backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load(ctx context.Context) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return decodeSnapshot(s.data)
}

func (s *MemoryStorage) Save(ctx context.Context, snap *model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snap == nil {
		snap = emptySnapshot()
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *MemoryStorage) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *MemoryStorage) Close() error {
	return nil
}
