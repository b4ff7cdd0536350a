//go:build unit

package availability_test

import (
	"testing"
	"time"

	"consult-booking/internal/domain/availability"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 2026-10-14 09:00 UTC.
var now = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
}

func at(d int, hhmm string) time.Time {
	return availability.MustTimeOfDay(hhmm).On(day(d), time.UTC)
}

func tod(s string) availability.TimeOfDay {
	return availability.MustTimeOfDay(s)
}

func newEngine(t *testing.T, mutate ...func(*availability.Schedule)) *availability.Engine {
	t.Helper()
	s := availability.DefaultSchedule()
	for _, m := range mutate {
		m(&s)
	}
	e, err := availability.NewEngine(s, clock.NewMockClock(now))
	require.NoError(t, err)
	return e
}

func TestEngine_IsSlotFree(t *testing.T) {
	e := newEngine(t)
	// occupies 13:30-15:30 on Thursday, buffers included
	existing := []availability.Occupancy{{Start: at(15, "14:00"), DurationMinutes: 60}}

	testCases := []struct {
		name     string
		date     time.Time
		start    string
		duration int
		existing []availability.Occupancy
		want     bool
	}{
		{name: "free weekday slot", date: day(15), start: "10:00", duration: 60, want: true},
		{name: "same slot as existing", date: day(15), start: "14:00", duration: 60, existing: existing, want: false},
		{name: "ends inside existing buffer", date: day(15), start: "13:15", duration: 45, existing: existing, want: false},
		{name: "ends exactly where existing buffer starts", date: day(15), start: "12:45", duration: 45, existing: existing, want: true},
		// 15:00 is taken: its 14:30 leading buffer overlaps the 14:00-15:00 session
		{name: "own buffer overlaps existing session", date: day(15), start: "15:00", duration: 45, existing: existing, want: false},
		{name: "own buffer overlaps existing tail", date: day(15), start: "15:15", duration: 45, existing: existing, want: false},
		{name: "own buffer starts where existing ends", date: day(15), start: "15:30", duration: 45, existing: existing, want: true},
		{name: "starts inside existing session", date: day(15), start: "14:45", duration: 45, existing: existing, want: false},
		{name: "existing on another day is ignored", date: day(16), start: "14:00", duration: 60, existing: existing, want: true},
		{name: "ends exactly at closing", date: day(15), start: "21:00", duration: 60, want: true},
		{name: "ends after closing", date: day(15), start: "21:15", duration: 60, want: false},
		{name: "shorter slot ending at closing", date: day(15), start: "21:15", duration: 45, want: true},
		{name: "starts before opening", date: day(15), start: "09:45", duration: 60, want: false},
		{name: "saturday", date: day(17), start: "10:00", duration: 60, want: false},
		{name: "sunday", date: day(18), start: "10:00", duration: 60, want: false},
		{name: "today is inside lead time", date: day(14), start: "18:00", duration: 60, want: false},
		{name: "past date", date: day(12), start: "12:00", duration: 60, want: false},
		{name: "tomorrow meets lead time", date: day(15), start: "18:00", duration: 120, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.IsSlotFree(tc.date, tod(tc.start), tc.duration, tc.existing)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEngine_IsSlotFree_InvalidArguments(t *testing.T) {
	e := newEngine(t)

	testCases := []struct {
		name     string
		date     time.Time
		start    availability.TimeOfDay
		duration int
		existing []availability.Occupancy
		errIs    error
	}{
		{name: "duration not allowed", date: day(15), start: tod("10:00"), duration: 50, errIs: availability.ErrInvalidDuration},
		{name: "zero duration", date: day(15), start: tod("10:00"), duration: 0, errIs: availability.ErrInvalidDuration},
		{name: "negative duration", date: day(15), start: tod("10:00"), duration: -60, errIs: availability.ErrInvalidDuration},
		{name: "start off the grid", date: day(15), start: tod("10:07"), duration: 60, errIs: availability.ErrInvalidTime},
		{name: "start out of range", date: day(15), start: availability.TimeOfDay(-15), duration: 60, errIs: availability.ErrInvalidTime},
		{name: "zero date", date: time.Time{}, start: tod("10:00"), duration: 60, errIs: availability.ErrInvalidDate},
		{
			name: "existing with zero duration", date: day(15), start: tod("10:00"), duration: 60,
			existing: []availability.Occupancy{{Start: at(15, "12:00"), DurationMinutes: 0}},
			errIs:    availability.ErrInvalidOccupancy,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.IsSlotFree(tc.date, tc.start, tc.duration, tc.existing)
			require.Error(t, err)
			assert.False(t, got)
			assert.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrInvalidArgument), "expected invalid argument mark, got %v", err)
		})
	}
}

func TestEngine_AvailableTimesForDate(t *testing.T) {
	e := newEngine(t)

	t.Run("empty weekday lists every start up to closing", func(t *testing.T) {
		times, err := e.AvailableTimesForDate(day(15), 60, nil)
		require.NoError(t, err)
		require.Len(t, times, 45)
		assert.Equal(t, tod("10:00"), times[0])
		assert.Equal(t, tod("21:00"), times[len(times)-1])
		for i := 1; i < len(times); i++ {
			assert.Equal(t, times[i-1].Add(15), times[i], "times must be ascending on the 15 minute grid")
		}
	})

	t.Run("longest duration stops earlier", func(t *testing.T) {
		times, err := e.AvailableTimesForDate(day(15), 120, nil)
		require.NoError(t, err)
		require.Len(t, times, 41)
		assert.Equal(t, tod("20:00"), times[len(times)-1])
	})

	t.Run("existing appointment removes overlapping starts", func(t *testing.T) {
		existing := []availability.Occupancy{{Start: at(15, "14:00"), DurationMinutes: 60}}
		times, err := e.AvailableTimesForDate(day(15), 45, existing)
		require.NoError(t, err)

		assert.Contains(t, times, tod("12:45"))
		assert.Contains(t, times, tod("15:30"))
		for _, blocked := range []string{"13:00", "13:15", "13:30", "14:00", "14:45", "15:00", "15:15"} {
			assert.NotContains(t, times, tod(blocked))
		}

		for _, tm := range times {
			free, err := e.IsSlotFree(day(15), tm, 45, existing)
			require.NoError(t, err)
			assert.True(t, free, "%s listed but not free", tm)
		}
	})

	t.Run("weekend and lead time yield empty", func(t *testing.T) {
		for _, d := range []time.Time{day(14), day(17), day(18)} {
			times, err := e.AvailableTimesForDate(d, 60, nil)
			require.NoError(t, err)
			assert.Empty(t, times)
			assert.NotNil(t, times)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := e.AvailableTimesForDate(day(15), 30, nil)
		assert.ErrorIs(t, err, availability.ErrInvalidDuration)
	})

	t.Run("enumeration is restartable", func(t *testing.T) {
		first, err := e.AvailableTimesForDate(day(16), 90, nil)
		require.NoError(t, err)
		second, err := e.AvailableTimesForDate(day(16), 90, nil)
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("enumeration changed between calls (-first +second):\n%s", diff)
		}
	})
}

// fills Thursday 10:00-22:00 with occupied intervals
func fullThursday() []availability.Occupancy {
	return []availability.Occupancy{
		{Start: at(15, "10:30"), DurationMinutes: 120},
		{Start: at(15, "13:00"), DurationMinutes: 120},
		{Start: at(15, "15:30"), DurationMinutes: 120},
		{Start: at(15, "18:00"), DurationMinutes: 120},
		{Start: at(15, "20:30"), DurationMinutes: 90},
	}
}

func TestEngine_QuickAvailableDates(t *testing.T) {
	t.Run("skips weekends starting from lead day", func(t *testing.T) {
		e := newEngine(t)
		dates, err := e.QuickAvailableDates(3, 60, nil)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{day(15), day(16), day(19)}, dates)
	})

	t.Run("skips fully booked days", func(t *testing.T) {
		e := newEngine(t)
		times, err := e.AvailableTimesForDate(day(15), 45, fullThursday())
		require.NoError(t, err)
		require.Empty(t, times)

		dates, err := e.QuickAvailableDates(2, 45, fullThursday())
		require.NoError(t, err)
		assert.Equal(t, []time.Time{day(16), day(19)}, dates)
	})

	t.Run("stops at the scan horizon", func(t *testing.T) {
		e := newEngine(t, func(s *availability.Schedule) { s.MaxScanDays = 3 })
		dates, err := e.QuickAvailableDates(5, 45, fullThursday())
		require.NoError(t, err)
		assert.Equal(t, []time.Time{day(16)}, dates)
	})

	t.Run("default horizon bounds the result", func(t *testing.T) {
		e := newEngine(t)
		dates, err := e.QuickAvailableDates(100, 60, nil)
		require.NoError(t, err)
		// 30 calendar days from Thursday 15th hold 22 weekdays
		assert.Len(t, dates, 22)
		for _, d := range dates {
			assert.False(t, availability.IsWeekend(d))
		}
	})

	t.Run("invalid count", func(t *testing.T) {
		e := newEngine(t)
		_, err := e.QuickAvailableDates(0, 60, nil)
		assert.ErrorIs(t, err, availability.ErrInvalidCount)
	})

	t.Run("invalid duration", func(t *testing.T) {
		e := newEngine(t)
		_, err := e.QuickAvailableDates(3, 61, nil)
		assert.ErrorIs(t, err, availability.ErrInvalidDuration)
	})
}

func TestEngine_LeadDays(t *testing.T) {
	t.Run("zero lead days allows today", func(t *testing.T) {
		e := newEngine(t, func(s *availability.Schedule) { s.MinLeadDays = 0 })
		free, err := e.IsSlotFree(day(14), tod("18:00"), 60, nil)
		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("two lead days rejects tomorrow", func(t *testing.T) {
		e := newEngine(t, func(s *availability.Schedule) { s.MinLeadDays = 2 })
		free, err := e.IsSlotFree(day(15), tod("18:00"), 60, nil)
		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("today follows the schedule location", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		s := availability.DefaultSchedule()
		s.Location = berlin
		// 23:30 UTC on the 14th is already the 15th in Berlin
		e, err := availability.NewEngine(s, clock.NewMockClock(time.Date(2026, time.October, 14, 23, 30, 0, 0, time.UTC)))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, berlin), e.Today())
		free, err := e.IsSlotFree(time.Date(2026, time.October, 15, 0, 0, 0, 0, berlin), tod("12:00"), 60, nil)
		require.NoError(t, err)
		assert.False(t, free)
	})
}

func TestNewEngine_RejectsInvalidSchedule(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*availability.Schedule)
	}{
		{name: "missing location", mutate: func(s *availability.Schedule) { s.Location = nil }},
		{name: "open after close", mutate: func(s *availability.Schedule) { s.Open, s.Close = s.Close, s.Open }},
		{name: "zero step", mutate: func(s *availability.Schedule) { s.SlotStepMinutes = 0 }},
		{name: "open off the grid", mutate: func(s *availability.Schedule) { s.Open = tod("10:05") }},
		{name: "negative buffer", mutate: func(s *availability.Schedule) { s.BufferMinutes = -1 }},
		{name: "no durations", mutate: func(s *availability.Schedule) { s.AllowedDurations = nil }},
		{name: "duration off the grid", mutate: func(s *availability.Schedule) { s.AllowedDurations = []int{50} }},
		{name: "negative lead days", mutate: func(s *availability.Schedule) { s.MinLeadDays = -1 }},
		{name: "zero horizon", mutate: func(s *availability.Schedule) { s.MaxScanDays = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := availability.DefaultSchedule()
			tc.mutate(&s)
			_, err := availability.NewEngine(s, clock.NewMockClock(now))
			assert.ErrorIs(t, err, availability.ErrInvalidSchedule)
		})
	}
}
