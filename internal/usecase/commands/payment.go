package commands

import (
	"context"
	"errors"
	"log/slog"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/metrics"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Payment event outcomes, stored with the event and exported as metric labels.
const (
	OutcomePaid             = "paid"
	OutcomeCanceled         = "canceled"
	OutcomeAlreadySettled   = "already_settled"
	OutcomeConflict         = "conflict"
	OutcomeUnknownReference = "unknown_reference"
	OutcomeDuplicate        = "duplicate"
)

var errDuplicateEvent = errs.New("payment event already processed")

type PaymentEvent struct {
	EventID   string
	EventType string
	Reference string
}

type PaymentCommands interface {
	HandleCheckoutCompleted(ctx context.Context, event PaymentEvent) (string, error)
	HandleCheckoutExpired(ctx context.Context, event PaymentEvent) (string, error)
}

type paymentUseCaseImpl struct {
	uow     shared.UnitOfWork
	cache   shared.AvailabilityCache
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewPaymentUseCase(uow shared.UnitOfWork, cache shared.AvailabilityCache, clk clock.Clock, m *metrics.Metrics) PaymentCommands {
	if cache == nil {
		cache = shared.NoopAvailabilityCache{}
	}
	return &paymentUseCaseImpl{
		uow:     uow,
		cache:   cache,
		clock:   clk,
		metrics: m,
	}
}

func (uc *paymentUseCaseImpl) HandleCheckoutCompleted(ctx context.Context, event PaymentEvent) (string, error) {
	return uc.apply(ctx, event, func(a *appointment.Appointment) (string, string, error) {
		return OutcomePaid, TopicBookingConfirmed, a.MarkPaid(uc.clock.Now())
	})
}

func (uc *paymentUseCaseImpl) HandleCheckoutExpired(ctx context.Context, event PaymentEvent) (string, error) {
	return uc.apply(ctx, event, func(a *appointment.Appointment) (string, string, error) {
		return OutcomeCanceled, TopicBookingCanceled, a.Cancel(uc.clock.Now())
	})
}

type transition func(a *appointment.Appointment) (outcome, topic string, err error)

// apply records the event and moves the appointment in one transaction. Events
// that cannot change anything still succeed so the provider stops retrying.
func (uc *paymentUseCaseImpl) apply(ctx context.Context, event PaymentEvent, move transition) (string, error) {
	if event.EventID == "" || event.EventType == "" {
		return "", ErrInvalidPaymentEvent
	}

	var outcome string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome = OutcomeUnknownReference
		var (
			appt    *appointment.Appointment
			apptID  *uuid.UUID
			topic   string
			changed bool
		)

		if event.Reference != "" {
			found, err := tx.Appointments().FindByReferenceForUpdate(ctx, tx.DB(), event.Reference)
			switch {
			case err == nil:
				appt = found
				id := found.ID()
				apptID = &id
			case infra.IsKind(err, infra.KindNotFound):
			default:
				return err
			}
		}

		if appt != nil {
			var moveErr error
			outcome, topic, moveErr = move(appt)
			switch {
			case moveErr == nil:
				changed = true
			case errors.Is(moveErr, appointment.ErrAlreadySettled):
				outcome = OutcomeAlreadySettled
			case errs.Is(moveErr, errs.ErrConflict):
				outcome = OutcomeConflict
			default:
				return moveErr
			}
		}

		inserted, err := tx.PaymentEvents().Record(ctx, tx.DB(), event.EventID, event.EventType, apptID, outcome)
		if err != nil {
			return err
		}
		if !inserted {
			return errDuplicateEvent
		}

		if !changed {
			return nil
		}
		if err := tx.Appointments().UpdatePayment(ctx, tx.DB(), appt); err != nil {
			return err
		}
		return enqueueBookingNotification(ctx, tx, topic, appt, uc.clock.Now())
	})
	if errors.Is(err, errDuplicateEvent) {
		outcome, err = OutcomeDuplicate, nil
	}
	if err != nil {
		return "", err
	}

	uc.metrics.PaymentEvent(event.EventType, outcome)
	switch outcome {
	case OutcomeCanceled:
		if err := uc.cache.Invalidate(ctx); err != nil {
			slog.Warn("failed to invalidate availability cache", "error", err.Error())
		}
	case OutcomeUnknownReference, OutcomeConflict:
		slog.Warn("payment event not applied",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"reference", event.Reference,
			"outcome", outcome)
	default:
		slog.Info("payment event processed",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"outcome", outcome)
	}
	return outcome, nil
}
