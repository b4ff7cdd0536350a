package request

import (
	"strings"

	"consult-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ServiceType     string `json:"service_type" binding:"required"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	ContactName     string `json:"contact_name" binding:"required,max=120"`
	ContactEmail    string `json:"contact_email" binding:"required"`
	Message         string `json:"message" binding:"max=2000"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceType:     strings.TrimSpace(r.ServiceType),
		Date:            strings.TrimSpace(r.Date),
		StartTime:       strings.TrimSpace(r.StartTime),
		DurationMinutes: r.DurationMinutes,
		ContactName:     strings.TrimSpace(r.ContactName),
		ContactEmail:    strings.TrimSpace(r.ContactEmail),
		Message:         strings.TrimSpace(r.Message),
	}
}

type CancelBookingRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
}
