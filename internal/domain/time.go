package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinutesPerDay is the number of minutes between 0000 and 2400.
	MinutesPerDay = 24 * 60
	// SlotMinutes is the scheduling granularity.
	SlotMinutes = 30
)

var (
	// ErrInvalidTime is returned for strings that are not a time of day.
	ErrInvalidTime = errors.New("time should be in the 24-hour format HHMM or HH:MM")

	// ErrNotInIntervalsOf30Min is returned for times whose minutes are not 00 or 30.
	ErrNotInIntervalsOf30Min = errors.New("time should be in intervals of 30 minutes")

	// ErrPastEndOfDay is returned when a time would go beyond 2400.
	ErrPastEndOfDay = errors.New("time goes past the end of the day")
)

// TimeInHalfHour is a time of day aligned to a half-hour boundary.
// The zero value is 0000. The largest value is 2400, reachable only through Plus.
type TimeInHalfHour struct {
	minutes int
}

// NewTimeInHalfHour creates a time from an hour in 0-23 and a minute of 0 or 30.
func NewTimeInHalfHour(hour, minute int) (TimeInHalfHour, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeInHalfHour{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}
	if minute%SlotMinutes != 0 {
		return TimeInHalfHour{}, fmt.Errorf("%w: %02d:%02d", ErrNotInIntervalsOf30Min, hour, minute)
	}
	return TimeInHalfHour{minutes: hour*60 + minute}, nil
}

// ParseTimeInHalfHour parses "HHMM" or "H:MM"/"HH:MM".
func ParseTimeInHalfHour(s string) (TimeInHalfHour, error) {
	s = strings.TrimSpace(s)

	var hourPart, minutePart string
	if before, after, found := strings.Cut(s, ":"); found {
		if len(before) < 1 || len(before) > 2 || len(after) != 2 {
			return TimeInHalfHour{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		hourPart, minutePart = before, after
	} else {
		if len(s) != 4 {
			return TimeInHalfHour{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		hourPart, minutePart = s[:2], s[2:]
	}

	hour, err := parseDigits(hourPart)
	if err != nil {
		return TimeInHalfHour{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := parseDigits(minutePart)
	if err != nil {
		return TimeInHalfHour{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return NewTimeInHalfHour(hour, minute)
}

func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// Hour returns the hour component.
func (t TimeInHalfHour) Hour() int {
	return t.minutes / 60
}

// Minute returns the minute component, 0 or 30.
func (t TimeInHalfHour) Minute() int {
	return t.minutes % 60
}

// Minutes returns the minutes since midnight.
func (t TimeInHalfHour) Minutes() int {
	return t.minutes
}

// Before reports whether t is strictly earlier than other.
func (t TimeInHalfHour) Before(other TimeInHalfHour) bool {
	return t.minutes < other.minutes
}

// Plus returns t moved forward by a positive multiple of 30 minutes.
func (t TimeInHalfHour) Plus(minutes int) (TimeInHalfHour, error) {
	if minutes%SlotMinutes != 0 {
		return TimeInHalfHour{}, fmt.Errorf("%w: %d minutes", ErrNotInIntervalsOf30Min, minutes)
	}
	total := t.minutes + minutes
	if total < 0 || total > MinutesPerDay {
		return TimeInHalfHour{}, fmt.Errorf("%w: %s plus %d minutes", ErrPastEndOfDay, t, minutes)
	}
	return TimeInHalfHour{minutes: total}, nil
}

// String formats the time as HHMM.
func (t TimeInHalfHour) String() string {
	return fmt.Sprintf("%02d%02d", t.Hour(), t.Minute())
}
