package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/metrics"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EndpointCreateBooking = "POST /api/bookings"

	JobKindEmail          = "email"
	TopicBookingCreated   = "booking_created"
	TopicBookingCanceled  = "booking_canceled"
	TopicBookingConfirmed = "booking_confirmed"
)

type CreateBookingInput struct {
	ServiceType     string `json:"service_type"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	ContactName     string `json:"contact_name"`
	ContactEmail    string `json:"contact_email"`
	Message         string `json:"message"`
}

type CreateBookingResult struct {
	Booking    *queries.AppointmentView
	IsReplayed bool
}

type BookingOptions struct {
	IdempotencyTTL time.Duration
}

type BookingCommands interface {
	// CreateBooking skips idempotency handling when idempotencyKey is uuid.Nil.
	CreateBooking(ctx context.Context, input CreateBookingInput, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID, paymentReference string) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	engine         *availability.Engine
	calc           appointment.PriceCalculator
	policy         appointment.HoldPolicy
	bookingQueries queries.BookingQueries
	cache          shared.AvailabilityCache
	clock          clock.Clock
	metrics        *metrics.Metrics
	opts           BookingOptions
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	engine *availability.Engine,
	calc appointment.PriceCalculator,
	policy appointment.HoldPolicy,
	bookingQueries queries.BookingQueries,
	cache shared.AvailabilityCache,
	clk clock.Clock,
	m *metrics.Metrics,
	opts BookingOptions,
) BookingCommands {
	if cache == nil {
		cache = shared.NoopAvailabilityCache{}
	}
	if opts.IdempotencyTTL <= 0 {
		opts.IdempotencyTTL = 24 * time.Hour
	}
	return &bookingUseCaseImpl{
		uow:            uow,
		engine:         engine,
		calc:           calc,
		policy:         policy,
		bookingQueries: bookingQueries,
		cache:          cache,
		clock:          clk,
		metrics:        m,
		opts:           opts,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, input CreateBookingInput, idempotencyKey uuid.UUID) (*CreateBookingResult, error) {
	schedule := uc.engine.Schedule()
	day, err := schedule.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := availability.ParseTimeOfDay(input.StartTime)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	appt, err := appointment.NewAppointment(appointment.NewParams{
		ServiceType:     input.ServiceType,
		Start:           uc.engine.SlotStart(day, startTime),
		DurationMinutes: input.DurationMinutes,
		ContactName:     input.ContactName,
		ContactEmail:    input.ContactEmail,
		Message:         input.Message,
	}, schedule, uc.calc, now)
	if err != nil {
		return nil, err
	}

	if idempotencyKey != uuid.Nil {
		replayed, err := uc.claimIdempotencyKey(ctx, idempotencyKey, requestHash(input))
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
		}
	}

	id, err := uc.insertAppointment(ctx, appt, day, startTime, idempotencyKey)
	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			uc.metrics.BookingConflict()
		}
		if idempotencyKey != uuid.Nil {
			uc.releaseIdempotencyKey(ctx, idempotencyKey)
		}
		return nil, err
	}

	uc.invalidateAvailability(ctx)
	uc.metrics.BookingCreated(appt.ServiceType().String())
	slog.Info("booking created", "booking_id", id, "start", appt.Start(), "duration_minutes", appt.DurationMinutes())

	// Read-after-write: Get the complete booking view from read store
	view, err := uc.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read created booking")
	}
	return &CreateBookingResult{Booking: view}, nil
}

// insertAppointment re-validates the slot against a fresh snapshot under the
// calendar lock; the exclusion constraint backs it up.
func (uc *bookingUseCaseImpl) insertAppointment(
	ctx context.Context,
	appt *appointment.Appointment,
	day time.Time,
	startTime availability.TimeOfDay,
	idempotencyKey uuid.UUID,
) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		if err := tx.Appointments().LockCalendar(ctx, tx.DB()); err != nil {
			return err
		}

		if cutoff := uc.policy.StaleBefore(now); !cutoff.IsZero() {
			expired, err := tx.Appointments().ExpireStaleHolds(ctx, tx.DB(), cutoff, now)
			if err != nil {
				return err
			}
			if expired > 0 {
				slog.Info("expired stale booking holds", "count", expired)
			}
		}

		from, to := shared.DayWindow(uc.engine.Schedule(), day)
		snaps, err := tx.Reads().OccupanciesBetween(ctx, from, to)
		if err != nil {
			slog.Warn("occupancy snapshot read failed", "date", day.Format(time.DateOnly), "error", err.Error())
			return errs.Wrap(queries.ErrAvailabilityUnavailable, "create booking")
		}

		free, err := uc.engine.IsSlotFree(day, startTime, appt.DurationMinutes(), shared.BlockingOccupancies(snaps, uc.policy, now))
		if err != nil {
			return err
		}
		if !free {
			return errs.Wrapf(ErrSlotUnavailable, "%s %s", day.Format(time.DateOnly), startTime)
		}

		id, err := tx.Appointments().Create(ctx, tx.DB(), appt)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Wrap(ErrSlotUnavailable, "overlapping appointment committed concurrently")
			}
			return err
		}
		createdID = id

		if err := uc.enqueueNotification(ctx, tx, TopicBookingCreated, appt); err != nil {
			return err
		}

		if idempotencyKey != uuid.Nil {
			return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, EndpointCreateBooking, idHash(id), id)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

// claimIdempotencyKey returns the stored booking for a completed replay and
// nil when the caller now owns the key.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(ctx context.Context, key uuid.UUID, hash string) (*queries.AppointmentView, error) {
	now := uc.clock.Now()
	expiresAt := now.Add(uc.opts.IdempotencyTTL)

	var replayID *uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, EndpointCreateBooking, hash, expiresAt)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		record, err := tx.Reads().IdempotencyByKey(ctx, key, EndpointCreateBooking)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// released by a failed attempt between our insert and read
				return ErrIdempotencyInProgress
			}
			return err
		}

		if record.Expired(now) {
			claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, EndpointCreateBooking, hash, expiresAt)
			if err != nil {
				return err
			}
			if !claimed {
				return ErrIdempotencyInProgress
			}
			return nil
		}

		if record.RequestHash != hash {
			return ErrIdempotencyKeyReused
		}
		if record.Status == shared.IdempotencyCompleted {
			if record.ResultAppointmentID == nil {
				return errs.Wrap(ErrBookingNotFound, "booking for this idempotency key was deleted")
			}
			replayID = record.ResultAppointmentID
			return nil
		}
		return ErrIdempotencyInProgress
	})
	if err != nil {
		return nil, err
	}
	if replayID == nil {
		return nil, nil
	}

	view, err := uc.bookingQueries.GetByID(ctx, *replayID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			return nil, errs.Wrap(ErrBookingNotFound, "booking for this idempotency key was deleted")
		}
		return nil, err
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, EndpointCreateBooking)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key, "error", err.Error())
	}
}

// CancelBooking abandons checkout for a pending booking. The payment reference
// proves the caller started that checkout. Repeating a cancel succeeds.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID, paymentReference string) error {
	canceled := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if paymentReference == "" || appt.PaymentReference() != paymentReference {
			return ErrBookingNotFound
		}

		if err := appt.Cancel(uc.clock.Now()); err != nil {
			if errors.Is(err, appointment.ErrAlreadySettled) {
				return nil
			}
			return err
		}

		if err := tx.Appointments().UpdatePayment(ctx, tx.DB(), appt); err != nil {
			return err
		}
		canceled = true
		return uc.enqueueNotification(ctx, tx, TopicBookingCanceled, appt)
	})
	if err != nil {
		return err
	}

	if canceled {
		uc.invalidateAvailability(ctx)
		slog.Info("booking canceled", "booking_id", id)
	}
	return nil
}

func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	uc.invalidateAvailability(ctx)
	slog.Info("booking deleted", "booking_id", id)
	return nil
}

func (uc *bookingUseCaseImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, appt *appointment.Appointment) error {
	return enqueueBookingNotification(ctx, tx, topic, appt, uc.clock.Now())
}

func (uc *bookingUseCaseImpl) invalidateAvailability(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate availability cache", "error", err.Error())
	}
}

func enqueueBookingNotification(ctx context.Context, tx shared.Tx, topic string, appt *appointment.Appointment, now time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":    appt.ID(),
		"type":          topic,
		"service_type":  appt.ServiceType().String(),
		"start":         appt.Start().Format(time.RFC3339),
		"contact_email": appt.Contact().Email(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), JobKindEmail, topic, payload, now)
}

func requestHash(input CreateBookingInput) string {
	data, _ := json.Marshal(input)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func idHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
