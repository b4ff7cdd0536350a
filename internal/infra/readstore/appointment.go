package readstore

import (
	"context"
	"time"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentViewQueries interface {
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	ListAppointmentsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsFirstPageParams) ([]sqlc.Appointments, error)
	ListAppointmentsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsKeysetParams) ([]sqlc.Appointments, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX, loc *time.Location) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return r.toView(row), nil
}

func (r *AppointmentReadStore) FindFirstPage(ctx context.Context, status *string, limit int32) ([]*queries.AppointmentView, error) {
	params := sqlc.ListAppointmentsFirstPageParams{
		Status:   pgconv.StringPtrToPgtype(status),
		RowLimit: limit,
	}

	rows, err := r.queries.ListAppointmentsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments first page", err)
	}
	return r.toViews(rows), nil
}

func (r *AppointmentReadStore) FindKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AppointmentView, error) {
	params := sqlc.ListAppointmentsKeysetParams{
		Status:    pgconv.StringPtrToPgtype(status),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	}

	rows, err := r.queries.ListAppointmentsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments keyset", err)
	}
	return r.toViews(rows), nil
}

func (r *AppointmentReadStore) toViews(rows []sqlc.Appointments) []*queries.AppointmentView {
	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = r.toView(row)
	}
	return result
}

func (r *AppointmentReadStore) toView(row sqlc.Appointments) *queries.AppointmentView {
	start := pgconv.WallClockFromPgtype(row.StartsAt, r.loc)
	return &queries.AppointmentView{
		ID:               row.ID,
		ServiceType:      row.ServiceType,
		Date:             start.Format(time.DateOnly),
		StartTime:        start.Format("15:04"),
		Start:            start,
		End:              start.Add(time.Duration(row.DurationMinutes) * time.Minute),
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
	}
}
