package queries

import (
	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"
)

type CatalogQueries interface {
	ListServices() ([]ServiceView, error)
	// TypicalDuration resolves the default length for a service type.
	TypicalDuration(serviceType string) (int, error)
}

type catalogQueriesImpl struct {
	schedule availability.Schedule
	calc     appointment.PriceCalculator
}

func NewCatalogQueries(schedule availability.Schedule, calc appointment.PriceCalculator) CatalogQueries {
	return &catalogQueriesImpl{schedule: schedule, calc: calc}
}

func (q *catalogQueriesImpl) ListServices() ([]ServiceView, error) {
	services := appointment.Catalog()
	out := make([]ServiceView, 0, len(services))
	for _, s := range services {
		view := ServiceView{
			Type:            s.Type.String(),
			Name:            s.Name,
			TypicalDuration: s.TypicalDuration,
			HourlyRateCents: s.HourlyRateCents,
			Durations:       make([]DurationPrice, 0, len(q.schedule.AllowedDurations)),
		}
		for _, d := range q.schedule.AllowedDurations {
			price, err := q.calc.CalculatePrice(s.Type, d)
			if err != nil {
				return nil, err
			}
			view.Durations = append(view.Durations, DurationPrice{Minutes: d, PriceCents: price.Cents()})
		}
		out = append(out, view)
	}
	return out, nil
}

func (q *catalogQueriesImpl) TypicalDuration(serviceType string) (int, error) {
	t, err := appointment.ParseServiceType(serviceType)
	if err != nil {
		return 0, err
	}
	info, _ := appointment.Lookup(t)
	return info.TypicalDuration, nil
}
