package domain

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrTimeSlotOccupied is returned when a scheduled activity would overlap another.
	ErrTimeSlotOccupied = errors.New("time slot overlaps with a scheduled activity")

	// ErrTimeSlotEmpty is returned when nothing is scheduled at the given time.
	ErrTimeSlotEmpty = errors.New("no activity is scheduled at that time")

	// ErrActivityNotScheduled is returned when an activity has no occurrence on a day.
	ErrActivityNotScheduled = errors.New("activity is not scheduled on that day")

	// ErrTooManyDays is returned when an itinerary would grow past MaxDays.
	ErrTooManyDays = errors.New("itinerary is too long")
)

// MaxDays bounds the length of an itinerary.
const MaxDays = 1000

// ScheduledActivity is an activity placed on a day. It occupies [Start, End).
type ScheduledActivity struct {
	Activity Activity
	Start    TimeInHalfHour
	End      TimeInHalfHour
}

// NewScheduledActivity places an activity at start and derives its end from the duration.
func NewScheduledActivity(activity Activity, start TimeInHalfHour) (ScheduledActivity, error) {
	end, err := start.Plus(activity.Duration)
	if err != nil {
		return ScheduledActivity{}, err
	}
	return ScheduledActivity{Activity: activity, Start: start, End: end}, nil
}

// Occupies reports whether the half-hour slot starting at t is taken.
func (s ScheduledActivity) Occupies(t TimeInHalfHour) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

// Overlaps reports whether two scheduled activities share any slot.
func (s ScheduledActivity) Overlaps(other ScheduledActivity) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

func (s ScheduledActivity) String() string {
	return fmt.Sprintf("%s-%s %s", s.Start, s.End, s.Activity.Name)
}

// Day is one itinerary day. Its activities are sorted by start time and never overlap.
type Day struct {
	activities []ScheduledActivity
}

// NewDay builds a day from previously scheduled entries, rejecting overlaps.
func NewDay(entries []ScheduledActivity) (Day, error) {
	var d Day
	for _, e := range entries {
		if _, err := d.Schedule(e.Activity, e.Start); err != nil {
			return Day{}, err
		}
	}
	return d, nil
}

// Activities returns a copy of the scheduled activities in start order.
func (d Day) Activities() []ScheduledActivity {
	out := make([]ScheduledActivity, len(d.activities))
	copy(out, d.activities)
	return out
}

// Clone returns a day that shares no storage with d.
func (d Day) Clone() Day {
	return Day{activities: d.Activities()}
}

// Schedule places activity at start.
func (d *Day) Schedule(activity Activity, start TimeInHalfHour) (ScheduledActivity, error) {
	entry, err := NewScheduledActivity(activity, start)
	if err != nil {
		return ScheduledActivity{}, err
	}
	for _, existing := range d.activities {
		if existing.Overlaps(entry) {
			return ScheduledActivity{}, fmt.Errorf("%w: %s", ErrTimeSlotOccupied, existing)
		}
	}
	d.activities = append(d.activities, entry)
	sort.SliceStable(d.activities, func(i, j int) bool {
		return d.activities[i].Start.Before(d.activities[j].Start)
	})
	return entry, nil
}

// UnscheduleAt removes the activity occupying the slot starting at t.
func (d *Day) UnscheduleAt(t TimeInHalfHour) (ScheduledActivity, error) {
	for i, existing := range d.activities {
		if existing.Occupies(t) {
			kept := make([]ScheduledActivity, 0, len(d.activities)-1)
			kept = append(kept, d.activities[:i]...)
			d.activities = append(kept, d.activities[i+1:]...)
			return existing, nil
		}
	}
	return ScheduledActivity{}, fmt.Errorf("%w: %s", ErrTimeSlotEmpty, t)
}

// UnscheduleActivity removes every occurrence of activity.
func (d *Day) UnscheduleActivity(activity Activity) ([]ScheduledActivity, error) {
	removed := d.removeAll(activity)
	if len(removed) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrActivityNotScheduled, activity.Name)
	}
	return removed, nil
}

// RemoveActivity removes every occurrence of activity and reports how many were removed.
func (d *Day) RemoveActivity(activity Activity) int {
	return len(d.removeAll(activity))
}

func (d *Day) removeAll(activity Activity) []ScheduledActivity {
	var removed []ScheduledActivity
	kept := make([]ScheduledActivity, 0, len(d.activities))
	for _, existing := range d.activities {
		if existing.Activity.Equal(activity) {
			removed = append(removed, existing)
			continue
		}
		kept = append(kept, existing)
	}
	d.activities = kept
	return removed
}
