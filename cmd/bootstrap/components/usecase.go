package components

import (
	"context"
	"log/slog"
	"time"

	"dormgate/internal/pkg/clock"
	"dormgate/internal/pkg/config"
	"dormgate/internal/usecase/commands"
	"dormgate/internal/usecase/queries"
	"dormgate/internal/usecase/selection"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	fx.Invoke(startSessionSweeper),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	selection.NewStore,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewRegistry,
	),
)

// startSessionSweeper drops abandoned booking sessions on an interval so
// they do not accumulate for the lifetime of the process.
func startSessionSweeper(lc fx.Lifecycle, store *selection.Store, cfg config.Config, logger *slog.Logger) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ticker := time.NewTicker(cfg.Booking.SweepInterval)
			go func() {
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if removed := store.Sweep(cfg.Booking.SessionMaxAge); removed > 0 {
							logger.Info("swept stale booking sessions", "removed", removed)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}
