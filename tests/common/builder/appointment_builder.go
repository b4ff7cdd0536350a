//go:build unit || e2e

package builder

import (
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"
	reqdto "consult-booking/internal/handler/dto/request"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID               uuid.UUID
	ServiceType      string
	Start            time.Time
	DurationMinutes  int
	ContactName      string
	ContactEmail     string
	Message          string
	PriceCents       int64
	PaymentStatus    string
	PaymentReference string
	CreatedAt        time.Time
	Schedule         availability.Schedule
}

// NewAppointmentBuilder defaults to Thursday 2026-10-15 14:00 UTC for 60 minutes.
func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:               uuid.New(),
		ServiceType:      string(appointment.ServiceConsultation),
		Start:            time.Date(2026, time.October, 15, 14, 0, 0, 0, time.UTC),
		DurationMinutes:  60,
		ContactName:      "Ada Lovelace",
		ContactEmail:     "ada@example.com",
		Message:          "Looking forward to it",
		PriceCents:       15000,
		PaymentStatus:    string(appointment.PaymentPending),
		PaymentReference: "apt_0123456789abcdef0123456789abcdef",
		CreatedAt:        time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC),
		Schedule:         availability.DefaultSchedule(),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithStart(start time.Time) *AppointmentBuilder {
	b.Start = start
	return b
}

func (b *AppointmentBuilder) WithDuration(minutes int) *AppointmentBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *AppointmentBuilder) WithServiceType(s string) *AppointmentBuilder {
	b.ServiceType = s
	return b
}

func (b *AppointmentBuilder) WithContact(name, email string) *AppointmentBuilder {
	b.ContactName = name
	b.ContactEmail = email
	return b
}

func (b *AppointmentBuilder) WithMessage(m string) *AppointmentBuilder {
	b.Message = m
	return b
}

func (b *AppointmentBuilder) WithPaymentStatus(s appointment.PaymentStatus) *AppointmentBuilder {
	b.PaymentStatus = string(s)
	return b
}

// BuildDomain runs the creation rules; ID and payment reference are generated.
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	return appointment.NewAppointment(appointment.NewParams{
		ServiceType:     b.ServiceType,
		Start:           b.Start,
		DurationMinutes: b.DurationMinutes,
		ContactName:     b.ContactName,
		ContactEmail:    b.ContactEmail,
		Message:         b.Message,
	}, b.Schedule, appointment.NewDefaultPriceCalculator(), b.CreatedAt)
}

// BuildReconstructed keeps every field as set on the builder.
func (b *AppointmentBuilder) BuildReconstructed() *appointment.Appointment {
	a, err := appointment.Reconstruct(appointment.ReconstructParams{
		ID:               b.ID,
		ServiceType:      b.ServiceType,
		Start:            b.Start,
		DurationMinutes:  b.DurationMinutes,
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		Message:          b.Message,
		PriceCents:       b.PriceCents,
		PaymentStatus:    b.PaymentStatus,
		PaymentReference: b.PaymentReference,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	})
	if err != nil {
		panic(err)
	}
	return a
}

func (b *AppointmentBuilder) BuildInfra() sqlc.Appointments {
	return sqlc.Appointments{
		ID:               b.ID,
		ServiceType:      b.ServiceType,
		StartsAt:         pgconv.WallClockToPgtype(b.Start),
		DurationMinutes:  int32(b.DurationMinutes),
		OccupiedFrom:     pgconv.WallClockToPgtype(b.Start.Add(-b.Schedule.Buffer())),
		EndsAt:           pgconv.WallClockToPgtype(b.Start.Add(time.Duration(b.DurationMinutes) * time.Minute)),
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		Message:          pgconv.OptionalStringToPgtype(b.Message),
		PriceCents:       b.PriceCents,
		PaymentStatus:    b.PaymentStatus,
		PaymentReference: b.PaymentReference,
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:               b.ID,
		ServiceType:      b.ServiceType,
		Date:             b.Start.Format(time.DateOnly),
		StartTime:        b.Start.Format("15:04"),
		Start:            b.Start,
		End:              b.Start.Add(time.Duration(b.DurationMinutes) * time.Minute),
		DurationMinutes:  b.DurationMinutes,
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		Message:          b.Message,
		PriceCents:       b.PriceCents,
		PaymentStatus:    b.PaymentStatus,
		PaymentReference: b.PaymentReference,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceType:     b.ServiceType,
		Date:            b.Start.Format(time.DateOnly),
		StartTime:       b.Start.Format("15:04"),
		DurationMinutes: b.DurationMinutes,
		ContactName:     b.ContactName,
		ContactEmail:    b.ContactEmail,
		Message:         b.Message,
	}
}
