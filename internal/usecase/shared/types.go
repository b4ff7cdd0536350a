package shared

import (
	"context"
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultAppointmentID *uuid.UUID
	ExpiresAt           time.Time
}

func (r *IdempotencyRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// OccupancySnapshot is a non-canceled appointment as stored, before the hold
// policy decides whether it still blocks its slot.
type OccupancySnapshot struct {
	Start           time.Time
	DurationMinutes int
	PaymentStatus   string
	CreatedAt       time.Time
}

// BlockingOccupancies keeps the snapshots that still hold their slot at now.
func BlockingOccupancies(snaps []OccupancySnapshot, policy appointment.HoldPolicy, now time.Time) []availability.Occupancy {
	out := make([]availability.Occupancy, 0, len(snaps))
	for _, s := range snaps {
		// unknown statuses hold the slot regardless of age
		status, err := appointment.ParsePaymentStatus(s.PaymentStatus)
		if err == nil && !policy.Blocks(status, s.CreatedAt, now) {
			continue
		}
		out = append(out, availability.Occupancy{Start: s.Start, DurationMinutes: s.DurationMinutes})
	}
	return out
}

// DayWindow covers every appointment that can interact with a slot on day.
func DayWindow(schedule availability.Schedule, day time.Time) (time.Time, time.Time) {
	start := schedule.DayOf(day)
	return start, schedule.AddDays(start, 1)
}

// AvailabilityKey identifies one enumeration. EarliestDay is part of the key so
// entries written before the lead-day cutoff rolls over are never read after it.
type AvailabilityKey struct {
	Date            string
	DurationMinutes int
	EarliestDay     string
}

// AvailabilityCache stores enumerated start times. Times returns the cache
// generation it read; StoreTimes writes under that generation so a result
// computed before an Invalidate is never visible after it. A negative
// generation means the cache could not be read and nothing is stored.
type AvailabilityCache interface {
	Times(ctx context.Context, key AvailabilityKey) ([]string, int64, bool)
	StoreTimes(ctx context.Context, key AvailabilityKey, generation int64, times []string)
	Invalidate(ctx context.Context) error
}

type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Times(context.Context, AvailabilityKey) ([]string, int64, bool) {
	return nil, -1, false
}
func (NoopAvailabilityCache) StoreTimes(context.Context, AvailabilityKey, int64, []string) {}
func (NoopAvailabilityCache) Invalidate(context.Context) error                             { return nil }
