package queries

import (
	"context"
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingFilter struct {
	Status *string
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindFirstPage(ctx context.Context, status *string, limit int32) ([]*AppointmentView, error)
	FindKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*AppointmentView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store AppointmentReadStore
}

func NewBookingQueries(store AppointmentReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	if filter.Status != nil {
		if _, err := appointment.ParsePaymentStatus(*filter.Status); err != nil {
			return nil, nil, err
		}
	}

	limit = ValidateLimit(limit)
	var rows []*AppointmentView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindFirstPage(ctx, filter.Status, int32(limit+1)) // #nosec G115 -- limit is capped
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.FindKeyset(ctx, filter.Status, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- limit is capped
	}
	if err != nil {
		return nil, nil, err
	}

	page, next := paginate(rows, limit, func(v *AppointmentView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return page, next, nil
}
