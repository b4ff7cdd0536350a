package queries

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentView is the admin read model of a booking.
type AppointmentView struct {
	ID               uuid.UUID  `json:"id"`
	ServiceType      string     `json:"service_type"`
	Date             string     `json:"date"`
	StartTime        string     `json:"start_time"`
	Start            time.Time  `json:"start"`
	End              time.Time  `json:"end"`
	DurationMinutes  int        `json:"duration_minutes"`
	ContactName      string     `json:"contact_name"`
	ContactEmail     string     `json:"contact_email"`
	Message          string     `json:"message,omitempty"`
	PriceCents       int64      `json:"price_cents"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentReference string     `json:"payment_reference"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type TestimonialView struct {
	ID          uuid.UUID `json:"id"`
	AuthorName  string    `json:"author_name"`
	AuthorTitle string    `json:"author_title,omitempty"`
	Rating      int       `json:"rating"`
	Quote       string    `json:"quote"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlotCheckView struct {
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Available       bool   `json:"available"`
}

type AvailableTimesView struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Times           []string `json:"times"`
}

type QuickDatesView struct {
	DurationMinutes int      `json:"duration_minutes"`
	Dates           []string `json:"dates"`
}

type ServiceView struct {
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	TypicalDuration int             `json:"typical_duration_minutes"`
	HourlyRateCents int64           `json:"hourly_rate_cents"`
	Durations       []DurationPrice `json:"durations"`
}

type DurationPrice struct {
	Minutes    int   `json:"minutes"`
	PriceCents int64 `json:"price_cents"`
}
