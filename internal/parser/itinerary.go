package parser

import (
	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/syntax"
)

var scheduleRouter = router{
	verb: command.WordSchedule,
	parsers: map[command.SecondWord]parseFunc{
		command.SecondActivity: parseScheduleActivity,
	},
}

// parseScheduleActivity parses "ACTIVITY_INDEX st/START_TIME d/DAY_INDEX".
// The activity index is the preamble, so the preamble must be non-empty here.
func parseScheduleActivity(args string) (command.Command, error) {
	m := syntax.Tokenize(args, syntax.PrefixStartTime, syntax.PrefixDay)
	if !m.Has(syntax.PrefixStartTime, syntax.PrefixDay) || m.Preamble() == "" {
		return nil, invalidFormat(command.ScheduleUsage)
	}
	activity, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, err
	}
	rawStart, _ := m.Value(syntax.PrefixStartTime)
	start, err := ParseTime(rawStart)
	if err != nil {
		return nil, err
	}
	rawDay, _ := m.Value(syntax.PrefixDay)
	day, err := ParseIndex(rawDay)
	if err != nil {
		return nil, err
	}
	return command.NewScheduleCommand(activity, start, day), nil
}

var unscheduleRouter = router{
	verb: command.WordUnschedule,
	parsers: map[command.SecondWord]parseFunc{
		command.SecondTime:     parseUnscheduleTime,
		command.SecondActivity: parseUnscheduleActivity,
	},
}

func parseUnscheduleTime(args string) (command.Command, error) {
	m, err := requirePrefixes(args, command.UnscheduleUsage,
		[]syntax.Prefix{syntax.PrefixStartTime, syntax.PrefixDay})
	if err != nil {
		return nil, err
	}
	rawStart, _ := m.Value(syntax.PrefixStartTime)
	start, err := ParseTime(rawStart)
	if err != nil {
		return nil, err
	}
	rawDay, _ := m.Value(syntax.PrefixDay)
	day, err := ParseIndex(rawDay)
	if err != nil {
		return nil, err
	}
	return command.NewUnscheduleTimeCommand(start, day), nil
}

func parseUnscheduleActivity(args string) (command.Command, error) {
	m, err := requirePrefixes(args, command.UnscheduleUsage,
		[]syntax.Prefix{syntax.PrefixActivity, syntax.PrefixDay})
	if err != nil {
		return nil, err
	}
	rawActivity, _ := m.Value(syntax.PrefixActivity)
	activity, err := ParseIndex(rawActivity)
	if err != nil {
		return nil, err
	}
	rawDay, _ := m.Value(syntax.PrefixDay)
	day, err := ParseIndex(rawDay)
	if err != nil {
		return nil, err
	}
	return command.NewUnscheduleActivityCommand(activity, day), nil
}
