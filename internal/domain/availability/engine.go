package availability

import (
	"time"

	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
)

// Engine decides slot legality against a snapshot of existing appointments.
// It keeps no state between calls; "today" is read from the injected clock in
// the schedule's location.
type Engine struct {
	schedule Schedule
	clock    clock.Clock
}

func NewEngine(schedule Schedule, clk clock.Clock) (*Engine, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return &Engine{schedule: schedule, clock: clk}, nil
}

func (e *Engine) Schedule() Schedule {
	return e.schedule
}

func (e *Engine) Today() time.Time {
	return clock.Today(e.clock, e.schedule.Location)
}

// EarliestBookableDay is today plus the minimum lead time.
func (e *Engine) EarliestBookableDay() time.Time {
	return e.schedule.AddDays(e.Today(), e.schedule.MinLeadDays)
}

// SlotStart combines a calendar date with a time of day in the schedule location.
func (e *Engine) SlotStart(date time.Time, start TimeOfDay) time.Time {
	return start.On(date, e.schedule.Location)
}

func (e *Engine) IsSlotFree(date time.Time, start TimeOfDay, durationMinutes int, existing []Occupancy) (bool, error) {
	if err := e.validateSlotArgs(date, durationMinutes, existing); err != nil {
		return false, err
	}
	if start < 0 || start > minutesPerDay || !start.IsAligned(e.schedule.SlotStepMinutes) {
		return false, errs.Wrapf(ErrInvalidTime, "%s is not on the %d minute grid", start, e.schedule.SlotStepMinutes)
	}

	day := e.schedule.DayOf(date)
	if !e.isBookableDay(day) {
		return false, nil
	}
	return e.fits(day, start, durationMinutes, e.occupiedIntervals(existing)), nil
}

// AvailableTimesForDate lists legal start times in ascending order. An empty
// result means the date has no room for the duration.
func (e *Engine) AvailableTimesForDate(date time.Time, durationMinutes int, existing []Occupancy) ([]TimeOfDay, error) {
	if err := e.validateSlotArgs(date, durationMinutes, existing); err != nil {
		return nil, err
	}

	day := e.schedule.DayOf(date)
	times := []TimeOfDay{}
	if !e.isBookableDay(day) {
		return times, nil
	}
	return e.timesOn(day, durationMinutes, e.occupiedIntervals(existing)), nil
}

// QuickAvailableDates scans forward from the earliest bookable day and returns
// up to count weekdays that still have room for typicalDuration. The scan stops
// after MaxScanDays calendar days.
func (e *Engine) QuickAvailableDates(count, typicalDuration int, existing []Occupancy) ([]time.Time, error) {
	if count <= 0 {
		return nil, errs.Wrapf(ErrInvalidCount, "%d", count)
	}
	if err := e.schedule.ValidateDuration(typicalDuration); err != nil {
		return nil, err
	}
	if err := validateOccupancies(existing); err != nil {
		return nil, err
	}

	occupied := e.occupiedIntervals(existing)
	first := e.EarliestBookableDay()
	dates := make([]time.Time, 0, count)
	for i := 0; i < e.schedule.MaxScanDays && len(dates) < count; i++ {
		day := e.schedule.AddDays(first, i)
		if IsWeekend(day) {
			continue
		}
		if len(e.timesOn(day, typicalDuration, occupied)) > 0 {
			dates = append(dates, day)
		}
	}
	return dates, nil
}

func (e *Engine) validateSlotArgs(date time.Time, durationMinutes int, existing []Occupancy) error {
	if date.IsZero() {
		return ErrInvalidDate
	}
	if err := e.schedule.ValidateDuration(durationMinutes); err != nil {
		return err
	}
	return validateOccupancies(existing)
}

func (e *Engine) isBookableDay(day time.Time) bool {
	if day.Before(e.EarliestBookableDay()) {
		return false
	}
	return !IsWeekend(day)
}

func (e *Engine) timesOn(day time.Time, durationMinutes int, occupied []Interval) []TimeOfDay {
	times := []TimeOfDay{}
	for t := e.schedule.Open; t.Add(durationMinutes) <= e.schedule.Close; t = t.Add(e.schedule.SlotStepMinutes) {
		if e.fits(day, t, durationMinutes, occupied) {
			times = append(times, t)
		}
	}
	return times
}

// fits assumes day already passed the lead time and weekday checks.
func (e *Engine) fits(day time.Time, start TimeOfDay, durationMinutes int, occupied []Interval) bool {
	if start < e.schedule.Open || start.Add(durationMinutes) > e.schedule.Close {
		return false
	}
	candidate := e.schedule.OccupiedInterval(e.SlotStart(day, start), durationMinutes)
	for _, o := range occupied {
		if candidate.Overlaps(o) {
			return false
		}
	}
	return true
}

func (e *Engine) occupiedIntervals(existing []Occupancy) []Interval {
	out := make([]Interval, 0, len(existing))
	for _, o := range existing {
		out = append(out, e.schedule.OccupiedInterval(o.Start, o.DurationMinutes))
	}
	return out
}
