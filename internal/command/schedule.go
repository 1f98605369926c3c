package command

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/syntax"
)

const (
	MessageScheduleSuccess = "Activity scheduled: %s on day %d"
	MessageSlotOccupied    = "The time slot overlaps with an activity already scheduled on that day"
	MessagePastEndOfDay    = "The activity would run past the end of the day"
)

// ScheduleUsage describes "schedule activity".
var ScheduleUsage = WordSchedule + " " + string(SecondActivity) + ": Schedules an activity on a day of the itinerary. " +
	"Parameters: ACTIVITY_INDEX " +
	syntax.PrefixStartTime.String() + "START_TIME " +
	syntax.PrefixDay.String() + "DAY_INDEX\n" +
	"Example: " + WordSchedule + " " + string(SecondActivity) + " 2 " +
	syntax.PrefixStartTime.String() + "0930 " +
	syntax.PrefixDay.String() + "1"

// ScheduleCommand places an activity from the shown activity list on a day.
type ScheduleCommand struct {
	activity domain.Index
	start    domain.TimeInHalfHour
	day      domain.Index
}

func NewScheduleCommand(activity domain.Index, start domain.TimeInHalfHour, day domain.Index) *ScheduleCommand {
	return &ScheduleCommand{activity: activity, start: start, day: day}
}

func (c *ScheduleCommand) Word() (string, SecondWord) { return WordSchedule, SecondActivity }
func (c *ScheduleCommand) Kind() Kind                 { return KindMutating }

func (c *ScheduleCommand) Execute(m Model) (*Result, error) {
	activity, err := entityAt(m.Activities(), c.activity)
	if err != nil {
		return nil, err
	}
	if c.day.ZeroBased() >= len(m.Days()) {
		return nil, invalidIndex()
	}

	entry, err := m.ScheduleActivity(c.day, activity, c.start)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrTimeSlotOccupied):
		return nil, newError(err, MessageSlotOccupied)
	case errors.Is(err, domain.ErrPastEndOfDay):
		return nil, newError(err, MessagePastEndOfDay)
	default:
		return nil, &Error{Message: MessageInvalidIndex, Err: err}
	}

	return NewResult(fmt.Sprintf(MessageScheduleSuccess, entry, c.day.OneBased()), FocusAgenda).
		WithInfo(entry, c.day, entry.String()), nil
}

func (c *ScheduleCommand) Equal(other Command) bool {
	o, ok := other.(*ScheduleCommand)
	return ok && c.activity == o.activity && c.start == o.start && c.day == o.day
}
