package shared

import (
	"context"
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/testimonial"
	sqlc "consult-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Testimonials() TestimonialRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	PaymentEvents() PaymentEventRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	IdempotencyByKey(ctx context.Context, key uuid.UUID, endpoint string) (*IdempotencyRecord, error)
	OccupanciesBetween(ctx context.Context, from, to time.Time) ([]OccupancySnapshot, error)
}

type AppointmentRepository interface {
	// LockCalendar serialises booking writes until the transaction ends.
	LockCalendar(ctx context.Context, tx sqlc.DBTX) error
	ExpireStaleHolds(ctx context.Context, tx sqlc.DBTX, createdBefore, now time.Time) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	UpdatePayment(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	FindByReferenceForUpdate(ctx context.Context, tx sqlc.DBTX, reference string) (*appointment.Appointment, error)
}

type TestimonialRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *testimonial.Testimonial) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, t *testimonial.Testimonial) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*testimonial.Testimonial, error)
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, resultHash string, appointmentID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint string) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type PaymentEventRepository interface {
	// Record reports false when the event id was seen before.
	Record(ctx context.Context, tx sqlc.DBTX, eventID, eventType string, appointmentID *uuid.UUID, outcome string) (bool, error)
}
