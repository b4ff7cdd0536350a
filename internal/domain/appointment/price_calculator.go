package appointment

type PriceCalculator interface {
	CalculatePrice(service ServiceType, durationMinutes int) (Money, error)
}

// HourlyPriceCalculator bills the catalog hourly rate pro rata per minute.
type HourlyPriceCalculator struct {
	rates map[ServiceType]int64
}

func NewDefaultPriceCalculator() *HourlyPriceCalculator {
	rates := make(map[ServiceType]int64, len(catalog))
	for _, info := range catalog {
		rates[info.Type] = info.HourlyRateCents
	}
	return &HourlyPriceCalculator{rates: rates}
}

func (pc *HourlyPriceCalculator) CalculatePrice(service ServiceType, durationMinutes int) (Money, error) {
	rate, ok := pc.rates[service]
	if !ok {
		return Money{}, ErrUnknownServiceType
	}
	if durationMinutes <= 0 {
		return Money{}, ErrNegativeAmount
	}
	return NewMoney(rate * int64(durationMinutes) / 60)
}
