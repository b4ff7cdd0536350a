package commands

import (
	"context"
	"log/slog"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/usecase/shared"
)

type MaintenanceCommands interface {
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
	// ExpireStaleHolds cancels pending bookings older than the hold TTL.
	// It does nothing when holds never expire.
	ExpireStaleHolds(ctx context.Context) (int64, error)
}

type maintenanceUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy appointment.HoldPolicy
	cache  shared.AvailabilityCache
	clock  clock.Clock
}

func NewMaintenanceUseCase(uow shared.UnitOfWork, policy appointment.HoldPolicy, cache shared.AvailabilityCache, clk clock.Clock) MaintenanceCommands {
	if cache == nil {
		cache = shared.NoopAvailabilityCache{}
	}
	return &maintenanceUseCaseImpl{uow: uow, policy: policy, cache: cache, clock: clk}
}

func (uc *maintenanceUseCaseImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Idempotency().DeleteExpired(ctx, tx.DB())
		return err
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("purged expired idempotency keys", "count", n)
	}
	return n, nil
}

func (uc *maintenanceUseCaseImpl) ExpireStaleHolds(ctx context.Context) (int64, error) {
	now := uc.clock.Now()
	cutoff := uc.policy.StaleBefore(now)
	if cutoff.IsZero() {
		return 0, nil
	}

	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Appointments().LockCalendar(ctx, tx.DB()); err != nil {
			return err
		}
		var err error
		n, err = tx.Appointments().ExpireStaleHolds(ctx, tx.DB(), cutoff, now)
		return err
	})
	if err != nil {
		return 0, err
	}

	if n > 0 {
		slog.Info("expired stale booking holds", "count", n)
		if err := uc.cache.Invalidate(ctx); err != nil {
			slog.Warn("failed to invalidate availability cache", "error", err.Error())
		}
	}
	return n, nil
}
