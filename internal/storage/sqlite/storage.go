// Package sqlite provides a SQLite-backed planner storage.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/model"
	_ "modernc.org/sqlite"
)

// ErrUnknownScheduledActivity is returned when a day schedules an activity
// missing from the activity list.
var ErrUnknownScheduledActivity = errors.New("scheduled activity is not in the activity list")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS contacts (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	phone    TEXT NOT NULL,
	email    TEXT NOT NULL,
	address  TEXT NOT NULL,
	tags     TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS activities (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	address  TEXT NOT NULL,
	phone    TEXT NOT NULL DEFAULT '',
	duration INTEGER NOT NULL,
	tags     TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS accommodations (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	address  TEXT NOT NULL,
	phone    TEXT NOT NULL DEFAULT '',
	tags     TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS days (
	position INTEGER PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS schedule (
	day      INTEGER NOT NULL REFERENCES days(position),
	activity INTEGER NOT NULL REFERENCES activities(position),
	start    TEXT NOT NULL,
	PRIMARY KEY (day, start)
);
`

const versionKey = "version"

// SQLiteStorage stores the planner in a SQLite database. Every Save replaces
// the whole planner in one transaction.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a SQLite-backed storage at the provided path.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("sqlite storage: enable foreign keys: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}
	return nil
}

// Load reads the whole planner. An empty database is an empty planner.
func (s *SQLiteStorage) Load(ctx context.Context) (*model.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: begin read: %w", err)
	}
	defer tx.Rollback()

	snap := &model.Snapshot{Version: model.SnapshotVersion}
	if err := loadVersion(ctx, tx, snap); err != nil {
		return nil, err
	}
	if snap.Contacts, err = loadContacts(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Activities, err = loadActivities(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Accommodations, err = loadAccommodations(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Days, err = loadDays(ctx, tx, snap.Activities); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save replaces the stored planner with snap.
func (s *SQLiteStorage) Save(ctx context.Context, snap *model.Snapshot) error {
	if snap == nil {
		snap = &model.Snapshot{Version: model.SnapshotVersion}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: begin write: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"schedule", "days", "contacts", "activities", "accommodations", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("sqlite storage: clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO meta (key, value) VALUES (?, ?)",
		versionKey, strconv.Itoa(model.SnapshotVersion)); err != nil {
		return fmt.Errorf("sqlite storage: write version: %w", err)
	}
	for i, c := range snap.Contacts {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO contacts (position, name, phone, email, address, tags) VALUES (?, ?, ?, ?, ?, ?)",
			i, c.Name, c.Phone, c.Email, c.Address, joinTags(c.Tags)); err != nil {
			return fmt.Errorf("sqlite storage: write contact %q: %w", c.Name, err)
		}
	}
	for i, a := range snap.Activities {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO activities (position, name, address, phone, duration, tags) VALUES (?, ?, ?, ?, ?, ?)",
			i, a.Name, a.Address, a.Phone, a.Duration, joinTags(a.Tags)); err != nil {
			return fmt.Errorf("sqlite storage: write activity %q: %w", a.Name, err)
		}
	}
	for i, a := range snap.Accommodations {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO accommodations (position, name, address, phone, tags) VALUES (?, ?, ?, ?, ?)",
			i, a.Name, a.Address, a.Phone, joinTags(a.Tags)); err != nil {
			return fmt.Errorf("sqlite storage: write accommodation %q: %w", a.Name, err)
		}
	}
	for d, day := range snap.Days {
		if _, err := tx.ExecContext(ctx, "INSERT INTO days (position) VALUES (?)", d); err != nil {
			return fmt.Errorf("sqlite storage: write day %d: %w", d+1, err)
		}
		for _, e := range day.Entries {
			pos := activityPosition(snap.Activities, e.Activity)
			if pos < 0 {
				return fmt.Errorf("sqlite storage: day %d: %w: %q", d+1, ErrUnknownScheduledActivity, e.Activity.Name)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO schedule (day, activity, start) VALUES (?, ?, ?)", d, pos, e.Start); err != nil {
				return fmt.Errorf("sqlite storage: write day %d entry %s: %w", d+1, e.Start, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit: %w", err)
	}
	return nil
}

func loadVersion(ctx context.Context, tx *sql.Tx, snap *model.Snapshot) error {
	var raw string
	err := tx.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", versionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("sqlite storage: read version: %w", err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("sqlite storage: malformed version %q", raw)
	}
	snap.Version = v
	return nil
}

func loadContacts(ctx context.Context, tx *sql.Tx) ([]domain.Contact, error) {
	rows, err := tx.QueryContext(ctx, "SELECT name, phone, email, address, tags FROM contacts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: read contacts: %w", err)
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		var c domain.Contact
		var tags string
		if err := rows.Scan(&c.Name, &c.Phone, &c.Email, &c.Address, &tags); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan contact: %w", err)
		}
		c.Tags = splitTags(tags)
		out = append(out, c)
	}
	return out, rows.Err()
}

func loadActivities(ctx context.Context, tx *sql.Tx) ([]domain.Activity, error) {
	rows, err := tx.QueryContext(ctx, "SELECT name, address, phone, duration, tags FROM activities ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: read activities: %w", err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		var a domain.Activity
		var tags string
		if err := rows.Scan(&a.Name, &a.Address, &a.Phone, &a.Duration, &tags); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan activity: %w", err)
		}
		a.Tags = splitTags(tags)
		out = append(out, a)
	}
	return out, rows.Err()
}

func loadAccommodations(ctx context.Context, tx *sql.Tx) ([]domain.Accommodation, error) {
	rows, err := tx.QueryContext(ctx, "SELECT name, address, phone, tags FROM accommodations ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: read accommodations: %w", err)
	}
	defer rows.Close()

	var out []domain.Accommodation
	for rows.Next() {
		var a domain.Accommodation
		var tags string
		if err := rows.Scan(&a.Name, &a.Address, &a.Phone, &tags); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan accommodation: %w", err)
		}
		a.Tags = splitTags(tags)
		out = append(out, a)
	}
	return out, rows.Err()
}

func loadDays(ctx context.Context, tx *sql.Tx, activities []domain.Activity) ([]model.DaySnapshot, error) {
	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM days").Scan(&count); err != nil {
		return nil, fmt.Errorf("sqlite storage: count days: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	days := make([]model.DaySnapshot, count)

	rows, err := tx.QueryContext(ctx, "SELECT day, activity, start FROM schedule ORDER BY day, start")
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: read schedule: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day, activity int
		var start string
		if err := rows.Scan(&day, &activity, &start); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan schedule: %w", err)
		}
		if day < 0 || day >= count {
			return nil, fmt.Errorf("sqlite storage: schedule references missing day %d", day+1)
		}
		if activity < 0 || activity >= len(activities) {
			return nil, fmt.Errorf("sqlite storage: day %d: %w: position %d", day+1, ErrUnknownScheduledActivity, activity)
		}
		days[day].Entries = append(days[day].Entries, model.EntrySnapshot{
			Activity: activities[activity],
			Start:    start,
		})
	}
	return days, rows.Err()
}

func activityPosition(activities []domain.Activity, a domain.Activity) int {
	for i, candidate := range activities {
		if candidate.Equal(a) {
			return i
		}
	}
	return -1
}

// Tags are alphanumeric, so a single space is a safe separator.
func joinTags(tags []string) string {
	return strings.Join(tags, " ")
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Fields(raw)
}
