package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"consult-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

const janitorInterval = 5 * time.Minute

var JanitorModule = fx.Module("janitor",
	fx.Invoke(StartJanitor),
)

// StartJanitor periodically expires stale holds and purges idempotency keys
// until the app stops.
func StartJanitor(lc fx.Lifecycle, maintenance commands.MaintenanceCommands) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(janitorInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						runMaintenance(ctx, maintenance)
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

func runMaintenance(ctx context.Context, maintenance commands.MaintenanceCommands) {
	if _, err := maintenance.ExpireStaleHolds(ctx); err != nil {
		slog.Error("janitor: expire stale holds failed", "error", err.Error())
	}
	if _, err := maintenance.PurgeExpiredIdempotencyKeys(ctx); err != nil {
		slog.Error("janitor: purge idempotency keys failed", "error", err.Error())
	}
}
