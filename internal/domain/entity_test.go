package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	c, err := NewContact(" John Doe ", "98765432", "johnd@example.com", "311, Clementi Ave 2, #02-25", []string{"owesMoney", "friends", "friends"})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", c.Name)
	assert.Equal(t, []string{"friends", "owesMoney"}, c.Tags)
	assert.Equal(t, "John Doe Phone: 98765432 Email: johnd@example.com Address: 311, Clementi Ave 2, #02-25 Tags: [friends][owesMoney]", c.String())
}

func TestNewContactValidation(t *testing.T) {
	tests := []struct {
		name    string
		contact [4]string
		tags    []string
		wantErr error
	}{
		{"blank name", [4]string{" ", "123", "a@bc.com", "addr"}, nil, ErrInvalidName},
		{"symbol in name", [4]string{"J*hn", "123", "a@bc.com", "addr"}, nil, ErrInvalidName},
		{"short phone", [4]string{"John", "12", "a@bc.com", "addr"}, nil, ErrInvalidPhone},
		{"letters in phone", [4]string{"John", "12a4", "a@bc.com", "addr"}, nil, ErrInvalidPhone},
		{"missing at", [4]string{"John", "123", "abc.com", "addr"}, nil, ErrInvalidEmail},
		{"short domain label", [4]string{"John", "123", "a@b.c", "addr"}, nil, ErrInvalidEmail},
		{"blank address", [4]string{"John", "123", "a@bc.com", "  "}, nil, ErrInvalidAddress},
		{"bad tag", [4]string{"John", "123", "a@bc.com", "addr"}, []string{"best friend"}, ErrInvalidTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewContact(tt.contact[0], tt.contact[1], tt.contact[2], tt.contact[3], tt.tags)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContactEqual(t *testing.T) {
	a := Contact{Name: "Amy", Phone: "111", Email: "amy@example.com", Address: "Street 1", Tags: []string{"x", "y"}}
	b := Contact{Name: "Amy", Phone: "111", Email: "amy@example.com", Address: "Street 1", Tags: []string{"y", "x"}}
	assert.True(t, a.Equal(b))

	b.Phone = "222"
	assert.False(t, a.Equal(b))

	c := a
	c.Tags = []string{"x"}
	assert.False(t, a.Equal(c))
}

func TestNewActivity(t *testing.T) {
	a, err := NewActivity("Museum", "1 Art Rd", "", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultActivityDuration, a.Duration)

	_, err = NewActivity("Museum", "1 Art Rd", "", 45, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = NewActivity("Museum", "1 Art Rd", "9", 60, nil)
	assert.ErrorIs(t, err, ErrInvalidPhone)

	b, err := NewActivity("Museum", "1 Art Rd", "", 60, nil)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Contains(t, a.String(), "Duration: 60min")
}

func TestNewAccommodation(t *testing.T) {
	a, err := NewAccommodation("Hotel 81", "Geylang", "61234567", []string{"cheap"})
	require.NoError(t, err)
	assert.Equal(t, "Hotel 81 Address: Geylang Phone: 61234567 Tags: [cheap]", a.String())

	_, err = NewAccommodation("", "Geylang", "", nil)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func mustActivity(t *testing.T, name string, duration int) Activity {
	t.Helper()
	a, err := NewActivity(name, "somewhere", "", duration, nil)
	require.NoError(t, err)
	return a
}

func mustTime(t *testing.T, s string) TimeInHalfHour {
	t.Helper()
	tm, err := ParseTimeInHalfHour(s)
	require.NoError(t, err)
	return tm
}

func TestDaySchedule(t *testing.T) {
	var d Day
	lunch := mustActivity(t, "Lunch", 60)
	museum := mustActivity(t, "Museum", 120)

	entry, err := d.Schedule(museum, mustTime(t, "1300"))
	require.NoError(t, err)
	assert.Equal(t, "1500", entry.End.String())

	_, err = d.Schedule(lunch, mustTime(t, "1200"))
	require.NoError(t, err)

	acts := d.Activities()
	require.Len(t, acts, 2)
	assert.Equal(t, "Lunch", acts[0].Activity.Name)
	assert.Equal(t, "Museum", acts[1].Activity.Name)

	_, err = d.Schedule(lunch, mustTime(t, "1430"))
	assert.ErrorIs(t, err, ErrTimeSlotOccupied)

	_, err = d.Schedule(mustActivity(t, "Late", 90), mustTime(t, "2300"))
	assert.ErrorIs(t, err, ErrPastEndOfDay)

	_, err = d.Schedule(lunch, mustTime(t, "1500"))
	require.NoError(t, err)
	assert.Len(t, d.Activities(), 3)
}

func TestDayUnscheduleAt(t *testing.T) {
	var d Day
	museum := mustActivity(t, "Museum", 120)
	_, err := d.Schedule(museum, mustTime(t, "1300"))
	require.NoError(t, err)

	_, err = d.UnscheduleAt(mustTime(t, "1500"))
	assert.ErrorIs(t, err, ErrTimeSlotEmpty)

	removed, err := d.UnscheduleAt(mustTime(t, "1430"))
	require.NoError(t, err)
	assert.True(t, removed.Activity.Equal(museum))
	assert.Empty(t, d.Activities())
}

func TestDayUnscheduleActivity(t *testing.T) {
	var d Day
	lunch := mustActivity(t, "Lunch", 60)
	walk := mustActivity(t, "Walk", 30)
	for _, start := range []string{"0800", "1200"} {
		_, err := d.Schedule(lunch, mustTime(t, start))
		require.NoError(t, err)
	}
	_, err := d.Schedule(walk, mustTime(t, "1000"))
	require.NoError(t, err)

	clone := d.Clone()

	removed, err := d.UnscheduleActivity(lunch)
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.Len(t, d.Activities(), 1)
	assert.Len(t, clone.Activities(), 3)

	_, err = d.UnscheduleActivity(lunch)
	assert.ErrorIs(t, err, ErrActivityNotScheduled)

	assert.Equal(t, 1, d.RemoveActivity(walk))
	assert.Equal(t, 0, d.RemoveActivity(walk))
}
