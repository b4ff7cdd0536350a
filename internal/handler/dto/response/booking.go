package response

import (
	"time"

	"consult-booking/internal/usecase/queries"
)

// BookingResponse is returned to the customer after booking; the payment
// reference is what the checkout session carries back to us.
type BookingResponse struct {
	ID               string `json:"id"`
	ServiceType      string `json:"service_type"`
	Date             string `json:"date"`
	StartTime        string `json:"start_time"`
	DurationMinutes  int    `json:"duration_minutes"`
	PriceCents       int64  `json:"price_cents"`
	PaymentStatus    string `json:"payment_status"`
	PaymentReference string `json:"payment_reference"`
}

func FromBookingView(v *queries.AppointmentView) *BookingResponse {
	return &BookingResponse{
		ID:               v.ID.String(),
		ServiceType:      v.ServiceType,
		Date:             v.Date,
		StartTime:        v.StartTime,
		DurationMinutes:  v.DurationMinutes,
		PriceCents:       v.PriceCents,
		PaymentStatus:    v.PaymentStatus,
		PaymentReference: v.PaymentReference,
	}
}

type AdminBookingResponse struct {
	ID               string     `json:"id"`
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

func FromAdminBookingView(v *queries.AppointmentView) *AdminBookingResponse {
	return &AdminBookingResponse{
		ID:               v.ID.String(),
		ServiceType:      v.ServiceType,
		Date:             v.Date,
		StartTime:        v.StartTime,
		Start:            v.Start,
		End:              v.End,
		DurationMinutes:  v.DurationMinutes,
		ContactName:      v.ContactName,
		ContactEmail:     v.ContactEmail,
		Message:          v.Message,
		PriceCents:       v.PriceCents,
		PaymentStatus:    v.PaymentStatus,
		PaymentReference: v.PaymentReference,
		PaidAt:           v.PaidAt,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromAdminBookingList(items []*queries.AppointmentView) []*AdminBookingResponse {
	res := make([]*AdminBookingResponse, len(items))
	for i, it := range items {
		res[i] = FromAdminBookingView(it)
	}
	return res
}
