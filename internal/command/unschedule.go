package command

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/syntax"
)

const (
	MessageUnscheduleSuccess     = "Unscheduled %s from day %d"
	MessageTimeSlotEmpty         = "There is no activity scheduled at that time"
	MessageActivityNotScheduled  = "The activity is not scheduled on that day"
	messageUnscheduleDescription = ": Removes an activity from a day of the itinerary.\n"
)

// UnscheduleUsage describes the "unschedule" command word.
var UnscheduleUsage = WordUnschedule + messageUnscheduleDescription +
	"Parameters: " + string(SecondTime) + " " +
	syntax.PrefixStartTime.String() + "START_TIME " +
	syntax.PrefixDay.String() + "DAY_INDEX\n" +
	"        or: " + string(SecondActivity) + " " +
	syntax.PrefixActivity.String() + "ACTIVITY_INDEX " +
	syntax.PrefixDay.String() + "DAY_INDEX\n" +
	"Example: " + WordUnschedule + " " + string(SecondTime) + " " +
	syntax.PrefixStartTime.String() + "0900 " + syntax.PrefixDay.String() + "1"

// UnscheduleTimeCommand removes whatever occupies a half-hour slot on a day.
type UnscheduleTimeCommand struct {
	start domain.TimeInHalfHour
	day   domain.Index
}

func NewUnscheduleTimeCommand(start domain.TimeInHalfHour, day domain.Index) *UnscheduleTimeCommand {
	return &UnscheduleTimeCommand{start: start, day: day}
}

func (c *UnscheduleTimeCommand) Word() (string, SecondWord) { return WordUnschedule, SecondTime }
func (c *UnscheduleTimeCommand) Kind() Kind                 { return KindMutating }

func (c *UnscheduleTimeCommand) Execute(m Model) (*Result, error) {
	if c.day.ZeroBased() >= len(m.Days()) {
		return nil, invalidIndex()
	}
	removed, err := m.UnscheduleTime(c.day, c.start)
	if err != nil {
		if errors.Is(err, domain.ErrTimeSlotEmpty) {
			return nil, newError(err, MessageTimeSlotEmpty)
		}
		return nil, &Error{Message: MessageInvalidIndex, Err: err}
	}
	return NewResult(fmt.Sprintf(MessageUnscheduleSuccess, removed, c.day.OneBased()), FocusAgenda).
		WithInfo(removed, c.day, removed.String()), nil
}

func (c *UnscheduleTimeCommand) Equal(other Command) bool {
	o, ok := other.(*UnscheduleTimeCommand)
	return ok && c.start == o.start && c.day == o.day
}

// UnscheduleActivityCommand removes every occurrence of an activity from a day.
type UnscheduleActivityCommand struct {
	activity domain.Index
	day      domain.Index
}

func NewUnscheduleActivityCommand(activity, day domain.Index) *UnscheduleActivityCommand {
	return &UnscheduleActivityCommand{activity: activity, day: day}
}

func (c *UnscheduleActivityCommand) Word() (string, SecondWord) { return WordUnschedule, SecondActivity }
func (c *UnscheduleActivityCommand) Kind() Kind                 { return KindMutating }

func (c *UnscheduleActivityCommand) Execute(m Model) (*Result, error) {
	activity, err := entityAt(m.Activities(), c.activity)
	if err != nil {
		return nil, err
	}
	if c.day.ZeroBased() >= len(m.Days()) {
		return nil, invalidIndex()
	}
	removed, err := m.UnscheduleActivity(c.day, activity)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotScheduled) {
			return nil, newError(err, MessageActivityNotScheduled)
		}
		return nil, &Error{Message: MessageInvalidIndex, Err: err}
	}
	return NewResult(fmt.Sprintf(MessageUnscheduleSuccess, activity.Name, c.day.OneBased()), FocusAgenda).
		WithInfo(removed, c.day, fmt.Sprintf("%d occurrence(s) of %s", len(removed), activity.Name)), nil
}

func (c *UnscheduleActivityCommand) Equal(other Command) bool {
	o, ok := other.(*UnscheduleActivityCommand)
	return ok && c.activity == o.activity && c.day == o.day
}
