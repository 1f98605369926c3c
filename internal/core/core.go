// Package core runs planner commands: it parses a line, executes the command
// against the model, records history and persists the result.
package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/logging"
	"github.com/cristianoliveira/trip-planner/internal/model"
	"github.com/cristianoliveira/trip-planner/internal/parser"
)

// ErrPersistence wraps a failure to save the planner after a change.
// The change itself is kept in memory.
var ErrPersistence = errors.New("failed to save planner")

// Store loads and saves planner snapshots.
type Store interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, s *model.Snapshot) error
}

// Core ties the parser, the model and an optional store together.
// It is not safe for concurrent use.
type Core struct {
	parser *parser.Parser
	model  *model.Manager
	store  Store
	logger logging.Logger
}

// Option configures a Core.
type Option func(*Core)

// WithStore persists the model after every change.
func WithStore(s Store) Option {
	return func(c *Core) { c.store = s }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(c *Core) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Core around m.
func New(m *model.Manager, opts ...Option) *Core {
	if m == nil {
		panic("core.New: model must not be nil")
	}
	c := &Core{
		parser: parser.New(),
		model:  m,
		logger: logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the planner model for read access by views.
func (c *Core) Model() *model.Manager {
	return c.model
}

// Load replaces the model with the stored snapshot. Without a store it does nothing.
func (c *Core) Load(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	snap, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load planner: %w", err)
	}
	if err := c.model.Restore(snap); err != nil {
		return fmt.Errorf("load planner: %w", err)
	}
	c.logger.Debug("planner loaded", "contacts", len(c.model.Contacts()), "days", len(c.model.Days()))
	return nil
}

// Execute parses and runs one input line.
//
// Parse and execution failures leave the model unchanged and are returned as
// *parser.ParseError or *command.Error. When a change cannot be saved the
// result is returned together with an error wrapping ErrPersistence.
func (c *Core) Execute(ctx context.Context, line string) (*command.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	cmd, err := c.parser.Parse(line)
	if err != nil {
		c.logger.Debug("command rejected", "input", line, "error", err.Error())
		return nil, err
	}
	word, second := cmd.Word()
	log := c.logger.With("verb", word, "second", string(second))

	res, err := cmd.Execute(c.model)
	if err != nil {
		log.Info("command failed", "outcome", "error", "error", err.Error(), "duration", time.Since(start).String())
		return nil, err
	}

	switch cmd.Kind() {
	case command.KindMutating:
		c.model.Commit()
		err = c.save(ctx)
	case command.KindHistory:
		err = c.save(ctx)
	}
	if err != nil {
		log.Error("command save failed", "outcome", "unsaved", "error", err.Error())
		return res, err
	}

	log.Info("command executed", "outcome", "ok", "duration", time.Since(start).String())
	return res, nil
}

func (c *Core) save(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(ctx, c.model.Snapshot()); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// ReportFunc receives the outcome of one batch line.
type ReportFunc func(line string, res *command.Result, err error)

// RunAll executes every line read from r in order. Blank lines and lines
// starting with # are skipped. Each line is parsed just before it runs. Errors
// of individual lines go to report; RunAll stops early only when ctx is done,
// an exit command runs, or reading fails.
func (c *Core) RunAll(ctx context.Context, r io.Reader, report ReportFunc) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := c.Execute(ctx, line)
		if report != nil {
			report(line, res, err)
		}
		if res != nil && res.Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
