package model

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
)

// SnapshotVersion is the current persisted layout version.
const SnapshotVersion = 1

// ErrInvalidSnapshot is returned when persisted data breaks a model invariant.
var ErrInvalidSnapshot = errors.New("invalid planner snapshot")

// Snapshot is the persisted form of the planner.
type Snapshot struct {
	Version        int                    `yaml:"version"`
	Contacts       []domain.Contact       `yaml:"contacts"`
	Activities     []domain.Activity      `yaml:"activities"`
	Accommodations []domain.Accommodation `yaml:"accommodations"`
	Days           []DaySnapshot          `yaml:"days"`
}

// DaySnapshot is one persisted itinerary day.
type DaySnapshot struct {
	Entries []EntrySnapshot `yaml:"entries,omitempty"`
}

// EntrySnapshot is one persisted scheduled activity. Start is in HHMM form.
type EntrySnapshot struct {
	Activity domain.Activity `yaml:"activity"`
	Start    string          `yaml:"start"`
}

// Snapshot returns the full, unfiltered planner state.
func (m *Manager) Snapshot() *Snapshot {
	s := &Snapshot{
		Version:        SnapshotVersion,
		Contacts:       m.contacts.all(),
		Activities:     m.activities.all(),
		Accommodations: m.accommodations.all(),
		Days:           make([]DaySnapshot, len(m.days)),
	}
	for i, d := range m.days {
		for _, e := range d.Activities() {
			s.Days[i].Entries = append(s.Days[i].Entries, EntrySnapshot{
				Activity: e.Activity,
				Start:    e.Start.String(),
			})
		}
	}
	return s
}

// Restore replaces the planner state with s and starts a fresh history.
// On error the manager is unchanged.
func (m *Manager) Restore(s *Snapshot) error {
	st, err := s.toState()
	if err != nil {
		return err
	}
	m.apply(st)
	m.history.reset(m.capture())
	return nil
}

func (s *Snapshot) toState() (state, error) {
	if s == nil {
		return state{}, nil
	}
	if s.Version > SnapshotVersion {
		return state{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, s.Version)
	}

	contacts := newEntityList(domain.Contact.Equal)
	for _, c := range s.Contacts {
		if err := c.Validate(); err != nil {
			return state{}, fmt.Errorf("%w: contact %q: %v", ErrInvalidSnapshot, c.Name, err)
		}
		if contacts.has(c) {
			return state{}, fmt.Errorf("%w: duplicate contact %q", ErrInvalidSnapshot, c.Name)
		}
		contacts.add(c)
	}

	activities := newEntityList(domain.Activity.Equal)
	for _, a := range s.Activities {
		if err := a.Validate(); err != nil {
			return state{}, fmt.Errorf("%w: activity %q: %v", ErrInvalidSnapshot, a.Name, err)
		}
		if activities.has(a) {
			return state{}, fmt.Errorf("%w: duplicate activity %q", ErrInvalidSnapshot, a.Name)
		}
		activities.add(a)
	}

	accommodations := newEntityList(domain.Accommodation.Equal)
	for _, a := range s.Accommodations {
		if err := a.Validate(); err != nil {
			return state{}, fmt.Errorf("%w: accommodation %q: %v", ErrInvalidSnapshot, a.Name, err)
		}
		if accommodations.has(a) {
			return state{}, fmt.Errorf("%w: duplicate accommodation %q", ErrInvalidSnapshot, a.Name)
		}
		accommodations.add(a)
	}

	days := make([]domain.Day, len(s.Days))
	for i, ds := range s.Days {
		entries := make([]domain.ScheduledActivity, 0, len(ds.Entries))
		for _, es := range ds.Entries {
			if !activities.has(es.Activity) {
				return state{}, fmt.Errorf("%w: day %d schedules unknown activity %q", ErrInvalidSnapshot, i+1, es.Activity.Name)
			}
			start, err := domain.ParseTimeInHalfHour(es.Start)
			if err != nil {
				return state{}, fmt.Errorf("%w: day %d: %v", ErrInvalidSnapshot, i+1, err)
			}
			entry, err := domain.NewScheduledActivity(es.Activity, start)
			if err != nil {
				return state{}, fmt.Errorf("%w: day %d: %v", ErrInvalidSnapshot, i+1, err)
			}
			entries = append(entries, entry)
		}
		day, err := domain.NewDay(entries)
		if err != nil {
			return state{}, fmt.Errorf("%w: day %d: %v", ErrInvalidSnapshot, i+1, err)
		}
		days[i] = day
	}

	return state{
		contacts:       contacts.all(),
		activities:     activities.all(),
		accommodations: accommodations.all(),
		days:           days,
	}, nil
}
