package appointment

type ServiceType string

const (
	ServiceConsultation ServiceType = "consultation"
	ServiceCoaching     ServiceType = "coaching"
	ServiceAnalysis     ServiceType = "analysis"
	ServicePitchDeck    ServiceType = "pitch_deck"
)

// ServiceInfo is the catalog entry shown in the booking wizard.
type ServiceInfo struct {
	Type            ServiceType
	Name            string
	TypicalDuration int
	HourlyRateCents int64
}

var catalog = []ServiceInfo{
	{Type: ServiceConsultation, Name: "Strategy consultation", TypicalDuration: 60, HourlyRateCents: 15000},
	{Type: ServiceCoaching, Name: "Founder coaching", TypicalDuration: 60, HourlyRateCents: 12000},
	{Type: ServiceAnalysis, Name: "Business analysis", TypicalDuration: 90, HourlyRateCents: 18000},
	{Type: ServicePitchDeck, Name: "Pitch deck review", TypicalDuration: 120, HourlyRateCents: 20000},
}

func Catalog() []ServiceInfo {
	out := make([]ServiceInfo, len(catalog))
	copy(out, catalog)
	return out
}

func ParseServiceType(s string) (ServiceType, error) {
	if _, ok := Lookup(ServiceType(s)); ok {
		return ServiceType(s), nil
	}
	return "", ErrUnknownServiceType
}

func Lookup(t ServiceType) (ServiceInfo, bool) {
	for _, info := range catalog {
		if info.Type == t {
			return info, true
		}
	}
	return ServiceInfo{}, false
}

func (t ServiceType) String() string { return string(t) }
