package availability

import (
	"slices"
	"strings"
	"time"

	"consult-booking/internal/pkg/errs"
)

// Schedule is the booking calendar's configuration. All business constants live
// here so the engine has none of its own.
type Schedule struct {
	Location         *time.Location
	Open             TimeOfDay
	Close            TimeOfDay
	BufferMinutes    int
	AllowedDurations []int
	SlotStepMinutes  int
	MinLeadDays      int
	MaxScanDays      int
}

func DefaultSchedule() Schedule {
	return Schedule{
		Location:         time.UTC,
		Open:             MustTimeOfDay("10:00"),
		Close:            MustTimeOfDay("22:00"),
		BufferMinutes:    30,
		AllowedDurations: []int{45, 60, 75, 90, 105, 120},
		SlotStepMinutes:  15,
		MinLeadDays:      1,
		MaxScanDays:      30,
	}
}

func (s Schedule) Validate() error {
	switch {
	case s.Location == nil:
		return errs.Wrap(ErrInvalidSchedule, "location is required")
	case s.Open >= s.Close:
		return errs.Wrapf(ErrInvalidSchedule, "open %s must be before close %s", s.Open, s.Close)
	case s.SlotStepMinutes <= 0:
		return errs.Wrap(ErrInvalidSchedule, "slot step must be positive")
	case !s.Open.IsAligned(s.SlotStepMinutes):
		return errs.Wrapf(ErrInvalidSchedule, "open %s is not on the %d minute grid", s.Open, s.SlotStepMinutes)
	case s.BufferMinutes < 0:
		return errs.Wrap(ErrInvalidSchedule, "buffer cannot be negative")
	case len(s.AllowedDurations) == 0:
		return errs.Wrap(ErrInvalidSchedule, "at least one duration must be allowed")
	case s.MinLeadDays < 0:
		return errs.Wrap(ErrInvalidSchedule, "lead days cannot be negative")
	case s.MaxScanDays <= 0:
		return errs.Wrap(ErrInvalidSchedule, "scan horizon must be positive")
	}
	for _, d := range s.AllowedDurations {
		if d <= 0 || d%s.SlotStepMinutes != 0 {
			return errs.Wrapf(ErrInvalidSchedule, "duration %d is not a positive multiple of the slot step", d)
		}
	}
	return nil
}

func (s Schedule) IsAllowedDuration(minutes int) bool {
	return slices.Contains(s.AllowedDurations, minutes)
}

func (s Schedule) ValidateDuration(minutes int) error {
	if !s.IsAllowedDuration(minutes) {
		return errs.Wrapf(ErrInvalidDuration, "%d minutes", minutes)
	}
	return nil
}

func (s Schedule) MaxDuration() int {
	return slices.Max(s.AllowedDurations)
}

func (s Schedule) Buffer() time.Duration {
	return time.Duration(s.BufferMinutes) * time.Minute
}

// OccupiedInterval is [start - buffer, start + duration).
func (s Schedule) OccupiedInterval(start time.Time, durationMinutes int) Interval {
	return Interval{
		From: start.Add(-s.Buffer()),
		To:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// DayOf returns local midnight of the calendar date carried by date.
func (s Schedule) DayOf(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.Location)
}

// ParseDate reads a "YYYY-MM-DD" calendar date as local midnight.
func (s Schedule) ParseDate(str string) (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(str), s.Location)
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrInvalidDate, "%q", str)
	}
	return d, nil
}

func (s Schedule) AddDays(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, s.Location)
}

func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
