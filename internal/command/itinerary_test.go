package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/model"
)

func itineraryModel(t *testing.T) (*model.Manager, domain.Activity, domain.Activity) {
	t.Helper()
	m := model.NewManager()
	zoo, museum := newActivity(t, "Zoo", 120), newActivity(t, "Museum", 60)
	m.AddActivity(zoo)
	m.AddActivity(museum)
	m.AddDays(2)
	return m, zoo, museum
}

func TestScheduleActivity(t *testing.T) {
	m, zoo, _ := itineraryModel(t)

	res, err := command.NewScheduleCommand(domain.MustIndex(1), mustTime(t, "0900"), domain.MustIndex(2)).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "Activity scheduled: 0900-1100 Zoo on day 2", res.Message)
	assert.Equal(t, []command.UIFocus{command.FocusAgenda}, res.Focus)

	entries := m.Days()[1].Activities()
	require.Len(t, entries, 1)
	assert.Equal(t, zoo, entries[0].Activity)
}

func TestScheduleActivityFailures(t *testing.T) {
	m, _, _ := itineraryModel(t)
	_, err := command.NewScheduleCommand(domain.MustIndex(1), mustTime(t, "0900"), domain.MustIndex(1)).Execute(m)
	require.NoError(t, err)

	tests := []struct {
		name     string
		activity int
		start    string
		day      int
		message  string
	}{
		{"activity index out of range", 3, "1200", 1, command.MessageInvalidIndex},
		{"day index out of range", 1, "1200", 3, command.MessageInvalidIndex},
		{"overlap", 2, "1030", 1, command.MessageSlotOccupied},
		{"past midnight", 1, "2300", 1, command.MessagePastEndOfDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := command.NewScheduleCommand(domain.MustIndex(tt.activity), mustTime(t, tt.start), domain.MustIndex(tt.day))
			_, err := cmd.Execute(m)
			requireCommandError(t, err, tt.message)
			assert.Len(t, m.Days()[0].Activities(), 1)
		})
	}
}

func TestUnscheduleTime(t *testing.T) {
	m, zoo, _ := itineraryModel(t)
	_, err := m.ScheduleActivity(domain.MustIndex(1), zoo, mustTime(t, "0900"))
	require.NoError(t, err)

	_, err = command.NewUnscheduleTimeCommand(mustTime(t, "1200"), domain.MustIndex(1)).Execute(m)
	requireCommandError(t, err, command.MessageTimeSlotEmpty)

	_, err = command.NewUnscheduleTimeCommand(mustTime(t, "0900"), domain.MustIndex(3)).Execute(m)
	requireCommandError(t, err, command.MessageInvalidIndex)

	res, err := command.NewUnscheduleTimeCommand(mustTime(t, "1030"), domain.MustIndex(1)).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "Unscheduled 0900-1100 Zoo from day 1", res.Message)
	assert.Empty(t, m.Days()[0].Activities())
}

func TestUnscheduleActivity(t *testing.T) {
	m, zoo, museum := itineraryModel(t)
	day := domain.MustIndex(1)
	for _, start := range []string{"0800", "1400"} {
		_, err := m.ScheduleActivity(day, zoo, mustTime(t, start))
		require.NoError(t, err)
	}
	_, err := m.ScheduleActivity(day, museum, mustTime(t, "1000"))
	require.NoError(t, err)

	res, err := command.NewUnscheduleActivityCommand(domain.MustIndex(1), day).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "Unscheduled Zoo from day 1", res.Message)
	assert.Len(t, res.Info.Entity, 2)

	remaining := m.Days()[0].Activities()
	require.Len(t, remaining, 1)
	assert.Equal(t, museum, remaining[0].Activity)

	_, err = command.NewUnscheduleActivityCommand(domain.MustIndex(1), day).Execute(m)
	requireCommandError(t, err, command.MessageActivityNotScheduled)

	_, err = command.NewUnscheduleActivityCommand(domain.MustIndex(5), day).Execute(m)
	requireCommandError(t, err, command.MessageInvalidIndex)
}

func TestDelete(t *testing.T) {
	m, zoo, museum := itineraryModel(t)
	alice := newContact(t, "Alice")
	m.AddContact(alice)
	_, err := m.ScheduleActivity(domain.MustIndex(2), zoo, mustTime(t, "0900"))
	require.NoError(t, err)

	res, err := command.NewDeleteCommand(command.SecondActivity, domain.MustIndex(1)).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "Deleted activity: "+zoo.String(), res.Message)
	assert.Equal(t, []domain.Activity{museum}, m.Activities())
	assert.Empty(t, m.Days()[1].Activities())

	_, err = command.NewDeleteCommand(command.SecondContact, domain.MustIndex(2)).Execute(m)
	requireCommandError(t, err, command.MessageInvalidIndex)

	_, err = command.NewDeleteCommand(command.SecondContact, domain.MustIndex(1)).Execute(m)
	require.NoError(t, err)
	assert.Empty(t, m.Contacts())

	res, err = command.NewDeleteCommand(command.SecondDay, domain.MustIndex(2)).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "Deleted day 2", res.Message)
	assert.Len(t, m.Days(), 1)

	_, err = command.NewDeleteCommand(command.SecondAccommodation, domain.MustIndex(1)).Execute(m)
	requireCommandError(t, err, command.MessageInvalidIndex)
}

func TestDeleteUsesShownIndex(t *testing.T) {
	m := model.NewManager()
	alice, bob := newContact(t, "Alice Tan"), newContact(t, "Bob Lim")
	m.AddContact(alice)
	m.AddContact(bob)

	_, err := command.NewFindCommand(command.SecondContact, []string{"bob"}).Execute(m)
	require.NoError(t, err)
	_, err = command.NewDeleteCommand(command.SecondContact, domain.MustIndex(1)).Execute(m)
	require.NoError(t, err)

	_, err = command.NewListCommand(command.SecondContact).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, []domain.Contact{alice}, m.Contacts())
}
