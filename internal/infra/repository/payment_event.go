package repository

import (
	"context"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentEventWriteQueries interface {
	InsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (int64, error)
}

// PaymentEventRepository remembers processed provider events so replays are
// acknowledged without side effects.
type PaymentEventRepository struct {
	queries PaymentEventWriteQueries
	db      sqlc.DBTX
}

func NewPaymentEventRepository(queries PaymentEventWriteQueries, db sqlc.DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentEventRepository) Record(ctx context.Context, tx sqlc.DBTX, eventID, eventType string, appointmentID *uuid.UUID, outcome string) (bool, error) {
	params := sqlc.InsertPaymentEventParams{
		EventID:       eventID,
		EventType:     eventType,
		AppointmentID: pgconv.UUIDPtrToPgtype(appointmentID),
		Outcome:       outcome,
	}

	n, err := r.queries.InsertPaymentEvent(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record payment event", err)
	}
	return n == 1, nil
}
