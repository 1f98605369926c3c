package main

import (
	"context"
	"sync"

	"github.com/cristianoliveira/trip-planner/internal/config"
	"github.com/cristianoliveira/trip-planner/internal/core"
	"github.com/cristianoliveira/trip-planner/internal/logging"
	"github.com/cristianoliveira/trip-planner/internal/model"
	"github.com/cristianoliveira/trip-planner/internal/storage"
	"github.com/cristianoliveira/trip-planner/internal/version"
)

// plannerClient builds the core on first use, after the root command has
// applied configuration and flags.
type plannerClient struct {
	newStore func() (storage.Storage, error)

	once  sync.Once
	core  *core.Core
	store storage.Storage
	err   error
}

func newPlannerClient(newStore func() (storage.Storage, error)) *plannerClient {
	return &plannerClient{newStore: newStore}
}

// Core returns the loaded planner core.
func (c *plannerClient) Core(ctx context.Context) (*core.Core, error) {
	c.once.Do(func() {
		c.store, c.err = c.newStore()
		if c.err != nil {
			return
		}
		m := model.NewManager(model.WithHistoryLimit(config.GetInt("history_limit", model.DefaultHistoryLimit)))
		c.core = core.New(m, core.WithStore(c.store), core.WithLogger(logging.GetGlobal()))
		c.err = c.core.Load(ctx)
	})
	return c.core, c.err
}

// Close releases the storage backend.
func (c *plannerClient) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

func (c *plannerClient) Version() string {
	return version.String()
}

var coreClient = newPlannerClient(storage.NewFromConfig)
