// Package model holds the in-memory planner state: the contact, activity and
// accommodation lists, the itinerary and the undo history.
package model

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
)

var (
	// ErrIndexOutOfRange is returned when an index is past the end of a list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when an entity is not in its list.
	ErrNotFound = errors.New("entity not found")
)

// DefaultHistoryLimit is the number of committed states kept for undo.
const DefaultHistoryLimit = 100

// Manager is the planner model. It is not safe for concurrent use.
type Manager struct {
	contacts       *entityList[domain.Contact]
	activities     *entityList[domain.Activity]
	accommodations *entityList[domain.Accommodation]
	days           []domain.Day
	history        *history
}

// Option configures a Manager.
type Option func(*Manager)

// WithHistoryLimit bounds the number of states kept for undo. Values below 1 are ignored.
func WithHistoryLimit(limit int) Option {
	return func(m *Manager) {
		if limit > 0 {
			m.history.limit = limit
		}
	}
}

// NewManager returns an empty planner.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		contacts:       newEntityList(domain.Contact.Equal),
		activities:     newEntityList(domain.Activity.Equal),
		accommodations: newEntityList(domain.Accommodation.Equal),
		history:        newHistory(DefaultHistoryLimit),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.history.reset(m.capture())
	return m
}

func (m *Manager) HasContact(c domain.Contact) bool { return m.contacts.has(c) }
func (m *Manager) AddContact(c domain.Contact)      { m.contacts.add(c) }

func (m *Manager) AddContactAtIndex(idx domain.Index, c domain.Contact) error {
	return m.contacts.insert(idx, c)
}

func (m *Manager) DeleteContact(c domain.Contact) error { return m.contacts.remove(c) }

func (m *Manager) ContactIndex(c domain.Contact) (domain.Index, bool) {
	return m.contacts.shownIndex(c)
}

func (m *Manager) Contacts() []domain.Contact { return m.contacts.shown() }

// FilterContacts sets the contact view filter. A nil keep shows every contact.
func (m *Manager) FilterContacts(keep func(domain.Contact) bool) { m.contacts.filter = keep }

func (m *Manager) HasActivity(a domain.Activity) bool { return m.activities.has(a) }
func (m *Manager) AddActivity(a domain.Activity)      { m.activities.add(a) }

// DeleteActivity removes a from the activity list and from every day it is scheduled on.
func (m *Manager) DeleteActivity(a domain.Activity) error {
	if err := m.activities.remove(a); err != nil {
		return err
	}
	for i := range m.days {
		m.days[i].RemoveActivity(a)
	}
	return nil
}

func (m *Manager) ActivityIndex(a domain.Activity) (domain.Index, bool) {
	return m.activities.shownIndex(a)
}

func (m *Manager) Activities() []domain.Activity { return m.activities.shown() }

func (m *Manager) FilterActivities(keep func(domain.Activity) bool) { m.activities.filter = keep }

func (m *Manager) HasAccommodation(a domain.Accommodation) bool { return m.accommodations.has(a) }
func (m *Manager) AddAccommodation(a domain.Accommodation)      { m.accommodations.add(a) }

func (m *Manager) DeleteAccommodation(a domain.Accommodation) error {
	return m.accommodations.remove(a)
}

func (m *Manager) AccommodationIndex(a domain.Accommodation) (domain.Index, bool) {
	return m.accommodations.shownIndex(a)
}

func (m *Manager) Accommodations() []domain.Accommodation { return m.accommodations.shown() }

func (m *Manager) FilterAccommodations(keep func(domain.Accommodation) bool) {
	m.accommodations.filter = keep
}

// AddDays appends n empty days.
func (m *Manager) AddDays(n int) {
	for i := 0; i < n; i++ {
		m.days = append(m.days, domain.Day{})
	}
}

func (m *Manager) DeleteDay(idx domain.Index) error {
	if err := m.checkDay(idx); err != nil {
		return err
	}
	days := make([]domain.Day, 0, len(m.days)-1)
	days = append(days, m.days[:idx.ZeroBased()]...)
	m.days = append(days, m.days[idx.ZeroBased()+1:]...)
	return nil
}

// Days returns copies of the itinerary days.
func (m *Manager) Days() []domain.Day {
	return cloneDays(m.days)
}

func (m *Manager) ScheduleActivity(day domain.Index, a domain.Activity, start domain.TimeInHalfHour) (domain.ScheduledActivity, error) {
	if err := m.checkDay(day); err != nil {
		return domain.ScheduledActivity{}, err
	}
	if !m.activities.has(a) {
		return domain.ScheduledActivity{}, fmt.Errorf("%w: %s", ErrNotFound, a.Name)
	}
	return m.days[day.ZeroBased()].Schedule(a, start)
}

func (m *Manager) UnscheduleTime(day domain.Index, t domain.TimeInHalfHour) (domain.ScheduledActivity, error) {
	if err := m.checkDay(day); err != nil {
		return domain.ScheduledActivity{}, err
	}
	return m.days[day.ZeroBased()].UnscheduleAt(t)
}

func (m *Manager) UnscheduleActivity(day domain.Index, a domain.Activity) ([]domain.ScheduledActivity, error) {
	if err := m.checkDay(day); err != nil {
		return nil, err
	}
	return m.days[day.ZeroBased()].UnscheduleActivity(a)
}

// Clear empties every list and the itinerary. History is kept so clear can be undone.
func (m *Manager) Clear() {
	m.contacts.reset(nil)
	m.activities.reset(nil)
	m.accommodations.reset(nil)
	m.days = nil
}

// Commit records the current state as the newest history entry and drops any redo states.
func (m *Manager) Commit() {
	m.history.push(m.capture())
}

// Undo restores the state before the last commit.
func (m *Manager) Undo() error {
	s, err := m.history.undo()
	if err != nil {
		return err
	}
	m.apply(s)
	return nil
}

// Redo restores the state undone by the last Undo.
func (m *Manager) Redo() error {
	s, err := m.history.redo()
	if err != nil {
		return err
	}
	m.apply(s)
	return nil
}

// CanUndo reports whether Undo would succeed.
func (m *Manager) CanUndo() bool { return m.history.canUndo() }

// CanRedo reports whether Redo would succeed.
func (m *Manager) CanRedo() bool { return m.history.canRedo() }

func (m *Manager) checkDay(idx domain.Index) error {
	if idx.ZeroBased() >= len(m.days) {
		return fmt.Errorf("%w: day %s", ErrIndexOutOfRange, idx)
	}
	return nil
}

func (m *Manager) capture() state {
	return state{
		contacts:       m.contacts.all(),
		activities:     m.activities.all(),
		accommodations: m.accommodations.all(),
		days:           cloneDays(m.days),
	}
}

func (m *Manager) apply(s state) {
	m.contacts.reset(s.contacts)
	m.activities.reset(s.activities)
	m.accommodations.reset(s.accommodations)
	m.days = cloneDays(s.days)
}

func cloneDays(days []domain.Day) []domain.Day {
	out := make([]domain.Day, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}
