package components

import (
	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		appointment.NewDefaultPriceCalculator,
		fx.As(new(appointment.PriceCalculator)),
	),
	func(cfg config.Config) commands.BookingOptions {
		return commands.BookingOptions{IdempotencyTTL: cfg.Schedule.IdempotencyTTL}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewTestimonialUseCase,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewTestimonialQueries,
		queries.NewCatalogQueries,
		queries.NewNotificationQueries,
	),
)
