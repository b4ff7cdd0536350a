package availability

import "time"

// Occupancy is the part of an existing appointment the engine needs.
type Occupancy struct {
	Start           time.Time
	DurationMinutes int
}

func (o Occupancy) End() time.Time {
	return o.Start.Add(time.Duration(o.DurationMinutes) * time.Minute)
}

// Interval is half-open: [From, To).
type Interval struct {
	From time.Time
	To   time.Time
}

// Overlaps reports a1 < b2 && b1 < a2. Touching intervals do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.From.Before(o.To) && o.From.Before(i.To)
}

func validateOccupancies(existing []Occupancy) error {
	for _, e := range existing {
		if e.DurationMinutes <= 0 || e.Start.IsZero() {
			return ErrInvalidOccupancy
		}
	}
	return nil
}
