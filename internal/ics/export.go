// Package ics renders the itinerary as an iCalendar document.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/cristianoliveira/trip-planner/internal/config"
	"github.com/cristianoliveira/trip-planner/internal/domain"
)

// ProductID identifies planner exports in PRODID.
const ProductID = "-//trip-planner//planner//EN"

// Exporter maps itinerary days onto calendar dates starting at a fixed day.
type Exporter struct {
	start time.Time
	now   func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock sets the clock used for DTSTAMP.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// NewExporter creates an exporter whose day 1 is the calendar day of start.
func NewExporter(start time.Time, opts ...Option) *Exporter {
	y, m, d := start.Date()
	e := &Exporter{
		start: time.Date(y, m, d, 0, 0, 0, 0, start.Location()),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calendar builds one VEVENT per scheduled activity.
func (e *Exporter) Calendar(days []domain.Day) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	stamp := e.now()
	for i, day := range days {
		date := e.start.AddDate(0, 0, i)
		for _, entry := range day.Activities() {
			event := cal.AddEvent(EventUID(i+1, entry))
			event.SetDtStampTime(stamp)
			event.SetStartAt(e.at(date, entry.Start))
			event.SetEndAt(e.at(date, entry.End))
			event.SetSummary(entry.Activity.Name)
			event.SetLocation(entry.Activity.Address)
			if len(entry.Activity.Tags) > 0 {
				event.SetDescription("Tags: " + strings.Join(entry.Activity.Tags, ", "))
			}
		}
	}
	return cal
}

// at returns wall-clock time t on date. Days that change offset keep the
// local hour; an end of 2400 rolls over to the next midnight.
func (e *Exporter) at(date time.Time, t domain.TimeInHalfHour) time.Time {
	y, m, d := date.Date()
	mins := t.Minutes()
	return time.Date(y, m, d, mins/60, mins%60, 0, 0, e.start.Location())
}

// Write serializes the calendar for days to w.
func (e *Exporter) Write(w io.Writer, days []domain.Day) error {
	if err := e.Calendar(days).SerializeTo(w); err != nil {
		return fmt.Errorf("ics: serialize: %w", err)
	}
	return nil
}

// EventUID is stable across exports as long as the entry stays in place.
func EventUID(day int, entry domain.ScheduledActivity) string {
	return fmt.Sprintf("day-%d-%s-%s@planner", day, entry.Start, slug(entry.Activity.Name))
}

func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// ResolveStartDate picks the date of day 1: the explicit value in
// config.DateLayout form, then trip_start_date, then today.
func ResolveStartDate(explicit string, today time.Time) (time.Time, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		d, err := time.ParseInLocation(config.DateLayout, explicit, today.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("ics: start date %q must be %s", explicit, config.DateLayout)
		}
		return d, nil
	}
	if d, ok := config.TripStartDate(); ok {
		return d, nil
	}
	y, m, d := today.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, today.Location()), nil
}
