package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeInHalfHour(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"colon on the hour", "09:00", "0900", nil},
		{"colon on the half hour", "09:30", "0930", nil},
		{"compact", "0900", "0900", nil},
		{"single digit hour", "7:30", "0730", nil},
		{"midnight", "0000", "0000", nil},
		{"last slot", "23:30", "2330", nil},
		{"surrounding spaces", "  1400 ", "1400", nil},
		{"quarter past", "09:15", "", ErrNotInIntervalsOf30Min},
		{"quarter past compact", "0915", "", ErrNotInIntervalsOf30Min},
		{"hour out of range", "2400", "", ErrInvalidTime},
		{"minute out of range", "0960", "", ErrInvalidTime},
		{"letters", "ab:cd", "", ErrInvalidTime},
		{"too short", "930", "", ErrInvalidTime},
		{"empty", "", "", ErrInvalidTime},
		{"signed", "-1:30", "", ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeInHalfHour(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeInHalfHourPlus(t *testing.T) {
	start, err := NewTimeInHalfHour(22, 30)
	require.NoError(t, err)

	end, err := start.Plus(90)
	require.NoError(t, err)
	assert.Equal(t, "2400", end.String())
	assert.Equal(t, MinutesPerDay, end.Minutes())

	_, err = start.Plus(120)
	assert.ErrorIs(t, err, ErrPastEndOfDay)

	_, err = start.Plus(45)
	assert.ErrorIs(t, err, ErrNotInIntervalsOf30Min)
}

func TestTimeInHalfHourAccessors(t *testing.T) {
	tm, err := NewTimeInHalfHour(13, 30)
	require.NoError(t, err)
	assert.Equal(t, 13, tm.Hour())
	assert.Equal(t, 30, tm.Minute())
	assert.Equal(t, 13*60+30, tm.Minutes())

	earlier, err := NewTimeInHalfHour(8, 0)
	require.NoError(t, err)
	assert.True(t, earlier.Before(tm))
	assert.False(t, tm.Before(earlier))
	assert.False(t, tm.Before(tm))
}

func TestIndexConversions(t *testing.T) {
	idx, err := IndexFromOneBased(1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.ZeroBased())
	assert.Equal(t, 1, idx.OneBased())
	assert.Equal(t, "1", idx.String())

	idx, err = IndexFromZeroBased(4)
	require.NoError(t, err)
	assert.Equal(t, 5, idx.OneBased())

	_, err = IndexFromOneBased(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = IndexFromZeroBased(-1)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	assert.Panics(t, func() { MustIndex(0) })
	assert.Equal(t, MustIndex(3), MustIndex(3))
}
