package queries

import (
	"context"
	"log/slog"
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/metrics"
	"consult-booking/internal/usecase/shared"
)

// OccupancyReadStore returns non-canceled appointments whose occupied interval
// intersects [from, to).
type OccupancyReadStore interface {
	Between(ctx context.Context, from, to time.Time) ([]shared.OccupancySnapshot, error)
}

type AvailabilityQueries interface {
	CheckSlot(ctx context.Context, date, startTime string, durationMinutes int) (*SlotCheckView, error)
	AvailableTimes(ctx context.Context, date string, durationMinutes int) (*AvailableTimesView, error)
	QuickDates(ctx context.Context, count, durationMinutes int) (*QuickDatesView, error)
}

type availabilityQueriesImpl struct {
	store   OccupancyReadStore
	engine  *availability.Engine
	policy  appointment.HoldPolicy
	cache   shared.AvailabilityCache
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewAvailabilityQueries(
	store OccupancyReadStore,
	engine *availability.Engine,
	policy appointment.HoldPolicy,
	cache shared.AvailabilityCache,
	clk clock.Clock,
	m *metrics.Metrics,
) AvailabilityQueries {
	if cache == nil {
		cache = shared.NoopAvailabilityCache{}
	}
	return &availabilityQueriesImpl{
		store:   store,
		engine:  engine,
		policy:  policy,
		cache:   cache,
		clock:   clk,
		metrics: m,
	}
}

func (q *availabilityQueriesImpl) CheckSlot(ctx context.Context, date, startTime string, durationMinutes int) (*SlotCheckView, error) {
	schedule := q.engine.Schedule()
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}
	start, err := availability.ParseTimeOfDay(startTime)
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateDuration(durationMinutes); err != nil {
		return nil, err
	}

	from, to := shared.DayWindow(schedule, day)
	existing, err := q.occupancies(ctx, from, to)
	if err != nil {
		return nil, err
	}

	free, err := q.engine.IsSlotFree(day, start, durationMinutes, existing)
	if err != nil {
		return nil, err
	}

	return &SlotCheckView{
		Date:            day.Format(time.DateOnly),
		StartTime:       start.String(),
		DurationMinutes: durationMinutes,
		Available:       free,
	}, nil
}

func (q *availabilityQueriesImpl) AvailableTimes(ctx context.Context, date string, durationMinutes int) (*AvailableTimesView, error) {
	schedule := q.engine.Schedule()
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateDuration(durationMinutes); err != nil {
		return nil, err
	}

	view := &AvailableTimesView{Date: day.Format(time.DateOnly), DurationMinutes: durationMinutes}
	key := shared.AvailabilityKey{
		Date:            view.Date,
		DurationMinutes: durationMinutes,
		EarliestDay:     q.engine.EarliestBookableDay().Format(time.DateOnly),
	}

	times, generation, ok := q.cache.Times(ctx, key)
	if ok {
		q.metrics.AvailabilityLookup("hit")
		view.Times = times
		return view, nil
	}
	q.metrics.AvailabilityLookup("miss")

	from, to := shared.DayWindow(schedule, day)
	existing, err := q.occupancies(ctx, from, to)
	if err != nil {
		return nil, err
	}

	starts, err := q.engine.AvailableTimesForDate(day, durationMinutes, existing)
	if err != nil {
		return nil, err
	}

	view.Times = make([]string, len(starts))
	for i, t := range starts {
		view.Times[i] = t.String()
	}
	q.cache.StoreTimes(ctx, key, generation, view.Times)

	return view, nil
}

func (q *availabilityQueriesImpl) QuickDates(ctx context.Context, count, durationMinutes int) (*QuickDatesView, error) {
	schedule := q.engine.Schedule()
	if count <= 0 {
		return nil, errs.Wrapf(availability.ErrInvalidCount, "%d", count)
	}
	if err := schedule.ValidateDuration(durationMinutes); err != nil {
		return nil, err
	}

	first := q.engine.EarliestBookableDay()
	existing, err := q.occupancies(ctx, first, schedule.AddDays(first, schedule.MaxScanDays))
	if err != nil {
		return nil, err
	}

	dates, err := q.engine.QuickAvailableDates(count, durationMinutes, existing)
	if err != nil {
		return nil, err
	}

	view := &QuickDatesView{DurationMinutes: durationMinutes, Dates: make([]string, len(dates))}
	for i, d := range dates {
		view.Dates[i] = d.Format(time.DateOnly)
	}
	return view, nil
}

// occupancies never substitutes an empty snapshot for a failed read.
func (q *availabilityQueriesImpl) occupancies(ctx context.Context, from, to time.Time) ([]availability.Occupancy, error) {
	snaps, err := q.store.Between(ctx, from, to)
	if err != nil {
		slog.Warn("availability snapshot read failed", "from", from, "to", to, "error", err.Error())
		return nil, errs.Wrapf(ErrAvailabilityUnavailable, "snapshot %s..%s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return shared.BlockingOccupancies(snaps, q.policy, q.clock.Now()), nil
}
