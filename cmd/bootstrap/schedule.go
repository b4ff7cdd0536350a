package bootstrap

import (
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		clock.NewRealClock,
		NewSchedule,
		NewHoldPolicy,
		availability.NewEngine,
	),
)

// NewSchedule turns the BOOKING_* settings into the engine's value object.
func NewSchedule(cfg config.Config) (availability.Schedule, error) {
	return ScheduleFromConfig(cfg.Schedule)
}

func ScheduleFromConfig(sc config.ScheduleConfig) (availability.Schedule, error) {
	loc, err := time.LoadLocation(sc.TimeZone)
	if err != nil {
		return availability.Schedule{}, errs.Wrapf(err, "invalid BOOKING_TIMEZONE %q", sc.TimeZone)
	}
	open, err := availability.ParseTimeOfDay(sc.Open)
	if err != nil {
		return availability.Schedule{}, errs.Wrap(err, "invalid BOOKING_OPEN")
	}
	closeAt, err := availability.ParseTimeOfDay(sc.Close)
	if err != nil {
		return availability.Schedule{}, errs.Wrap(err, "invalid BOOKING_CLOSE")
	}

	schedule := availability.Schedule{
		Location:         loc,
		Open:             open,
		Close:            closeAt,
		BufferMinutes:    sc.BufferMinutes,
		AllowedDurations: sc.AllowedDurations,
		SlotStepMinutes:  sc.SlotStepMinutes,
		MinLeadDays:      sc.MinLeadDays,
		MaxScanDays:      sc.MaxScanDays,
	}
	if err := schedule.Validate(); err != nil {
		return availability.Schedule{}, err
	}
	return schedule, nil
}

func NewHoldPolicy(cfg config.Config) appointment.HoldPolicy {
	return appointment.HoldPolicy{PendingTTL: cfg.Schedule.PendingHoldTTL}
}
