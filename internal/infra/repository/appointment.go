package repository

import (
	"context"
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"
	"consult-booking/internal/infra"
	"consult-booking/internal/infra/repository/converter"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// calendarLockKey is the advisory lock shared by every booking write.
const calendarLockKey int64 = 0x636f6e73756c74

type AppointmentWriteQueries interface {
	AcquireCalendarLock(ctx context.Context, db sqlc.DBTX, pgAdvisoryXactLock int64) error
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
	UpdateAppointmentPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentPaymentParams) (int64, error)
	DeleteAppointment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ExpireStalePendingAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStalePendingAppointmentsParams) (int64, error)
	GetAppointmentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	GetAppointmentByReferenceForUpdate(ctx context.Context, db sqlc.DBTX, paymentReference string) (sqlc.Appointments, error)
}

type AppointmentRepository struct {
	queries  AppointmentWriteQueries
	db       sqlc.DBTX
	schedule availability.Schedule
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX, schedule availability.Schedule) *AppointmentRepository {
	return &AppointmentRepository{
		queries:  queries,
		db:       db,
		schedule: schedule,
	}
}

func (r *AppointmentRepository) LockCalendar(ctx context.Context, tx sqlc.DBTX) error {
	if err := r.queries.AcquireCalendarLock(ctx, tx, calendarLockKey); err != nil {
		return infra.WrapRepoErr("failed to acquire calendar lock", err)
	}
	return nil
}

func (r *AppointmentRepository) ExpireStaleHolds(ctx context.Context, tx sqlc.DBTX, createdBefore, now time.Time) (int64, error) {
	params := sqlc.ExpireStalePendingAppointmentsParams{
		CreatedAt: pgconv.TimeToPgtype(createdBefore),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
	n, err := r.queries.ExpireStalePendingAppointments(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale holds", err)
	}
	return n, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	params := converter.AppointmentToCreateParams(a, r.schedule)

	id, err := r.queries.CreateAppointment(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) UpdatePayment(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	n, err := r.queries.UpdateAppointmentPayment(ctx, tx, converter.AppointmentToPaymentParams(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment payment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteAppointment(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}
	return r.toDomain(row)
}

func (r *AppointmentRepository) FindByReferenceForUpdate(ctx context.Context, tx sqlc.DBTX, reference string) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentByReferenceForUpdate(ctx, tx, reference)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock appointment by reference", err)
	}
	return r.toDomain(row)
}

func (r *AppointmentRepository) toDomain(row sqlc.Appointments) (*appointment.Appointment, error) {
	a, err := converter.AppointmentFromInfra(row, r.schedule.Location)
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment is invalid", err)
	}
	return a, nil
}
