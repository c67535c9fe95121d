package wellness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

func TestParseRepeat(t *testing.T) {
	for in, want := range map[string]Repeat{
		"daily": RepeatDaily, "Diario": RepeatDaily, " WEEKLY ": RepeatWeekly, "semanal": RepeatWeekly,
	} {
		got, err := ParseRepeat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRepeat("monthly")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "08:30", want: "08:30"},
		{in: "8:30", want: "08:30"},
		{in: "21:05", want: "21:05"},
		{in: "08:30 AM", want: "08:30"},
		{in: "8:30 pm", want: "20:30"},
		{in: "12:15AM", want: "00:15"},
		{in: "25:00", wantErr: true},
		{in: "", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrorValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextFire_Daily(t *testing.T) {
	// Saturday 10 May 2025, 09:00
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

	later, err := NextFire(models.Reminder{Repeat: "daily", Clock: "10:15"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 10, 10, 15, 0, 0, time.UTC), later)

	earlier, err := NextFire(models.Reminder{Repeat: "diario", Clock: "08:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 11, 8, 0, 0, 0, time.UTC), earlier)

	same, err := NextFire(models.Reminder{Repeat: "daily", Clock: "09:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 11, 9, 0, 0, 0, time.UTC), same)
}

func TestNextFire_Weekly(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC) // Saturday

	monday, err := NextFire(models.Reminder{Repeat: "weekly", Clock: "07:30", Weekday: time.Monday}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 12, 7, 30, 0, 0, time.UTC), monday)

	todayLater, err := NextFire(models.Reminder{Repeat: "semanal", Clock: "20:00", Weekday: time.Saturday}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 10, 20, 0, 0, 0, time.UTC), todayLater)

	todayPassed, err := NextFire(models.Reminder{Repeat: "weekly", Clock: "08:00", Weekday: time.Saturday}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 17, 8, 0, 0, 0, time.UTC), todayPassed)
}

func TestNextFire_InvalidReminder(t *testing.T) {
	now := time.Now()
	_, err := NextFire(models.Reminder{Repeat: "daily", Clock: "late"}, now)
	require.ErrorIs(t, err, common.ErrorValidation)
	_, err = NextFire(models.Reminder{Repeat: "yearly", Clock: "08:00"}, now)
	require.ErrorIs(t, err, common.ErrorValidation)
}
