package converter

import (
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
)

// AppointmentToCreateParams stores the occupied interval alongside the start
// so the exclusion constraint sees the buffer.
func AppointmentToCreateParams(a *appointment.Appointment, schedule availability.Schedule) sqlc.CreateAppointmentParams {
	occupied := schedule.OccupiedInterval(a.Start(), a.DurationMinutes())

	return sqlc.CreateAppointmentParams{
		ID:               a.ID(),
		ServiceType:      a.ServiceType().String(),
		StartsAt:         pgconv.WallClockToPgtype(a.Start()),
		DurationMinutes:  pgconv.ClampInt32(a.DurationMinutes()),
		OccupiedFrom:     pgconv.WallClockToPgtype(occupied.From),
		EndsAt:           pgconv.WallClockToPgtype(occupied.To),
		ContactName:      a.Contact().Name(),
		ContactEmail:     a.Contact().Email(),
		Message:          pgconv.OptionalStringToPgtype(a.Message().String()),
		PriceCents:       a.Price().Cents(),
		PaymentStatus:    a.PaymentStatus().String(),
		PaymentReference: a.PaymentReference(),
		CreatedAt:        pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToPaymentParams(a *appointment.Appointment) sqlc.UpdateAppointmentPaymentParams {
	return sqlc.UpdateAppointmentPaymentParams{
		ID:            a.ID(),
		PaymentStatus: a.PaymentStatus().String(),
		PaidAt:        pgconv.TimePtrToPgtype(a.PaidAt()),
		UpdatedAt:     pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentFromInfra(row sqlc.Appointments, loc *time.Location) (*appointment.Appointment, error) {
	return appointment.Reconstruct(appointment.ReconstructParams{
		ID:               row.ID,
		ServiceType:      row.ServiceType,
		Start:            pgconv.WallClockFromPgtype(row.StartsAt, loc),
		DurationMinutes:  int(row.DurationMinutes),
		ContactName:      row.ContactName,
		ContactEmail:     row.ContactEmail,
		Message:          pgconv.StringFromPgtype(row.Message),
		PriceCents:       row.PriceCents,
		PaymentStatus:    row.PaymentStatus,
		PaymentReference: row.PaymentReference,
		PaidAt:           pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
