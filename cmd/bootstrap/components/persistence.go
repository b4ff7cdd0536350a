package components

import (
	"time"

	"consult-booking/internal/domain/availability"
	"consult-booking/internal/infra/readstore"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/infra/uow"
	"consult-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewLocation,
)

// Write-side repositories are created per transaction by the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Occupancy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OccupancyReadQueries)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyReadStore)),
		),
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Testimonial
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TestimonialViewQueries)),
		),
		fx.Annotate(
			readstore.NewTestimonialReadStore,
			fx.As(new(queries.TestimonialReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewLocation is the zone stored wall clock times are read in.
func NewLocation(schedule availability.Schedule) *time.Location {
	return schedule.Location
}
