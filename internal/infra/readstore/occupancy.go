package readstore

import (
	"context"
	"time"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/shared"
)

type OccupancyReadQueries interface {
	ListOccupanciesBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupanciesBetweenParams) ([]sqlc.ListOccupanciesBetweenRow, error)
}

// OccupancyReadStore reads the appointment snapshot the availability engine
// evaluates. Stored wall clock times are interpreted in loc.
type OccupancyReadStore struct {
	queries OccupancyReadQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewOccupancyReadStore(queries OccupancyReadQueries, db sqlc.DBTX, loc *time.Location) *OccupancyReadStore {
	return &OccupancyReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (s *OccupancyReadStore) Between(ctx context.Context, from, to time.Time) ([]shared.OccupancySnapshot, error) {
	params := sqlc.ListOccupanciesBetweenParams{
		WindowFrom: pgconv.WallClockToPgtype(from),
		WindowTo:   pgconv.WallClockToPgtype(to),
	}

	rows, err := s.queries.ListOccupanciesBetween(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupancies", err)
	}

	out := make([]shared.OccupancySnapshot, len(rows))
	for i, row := range rows {
		out[i] = shared.OccupancySnapshot{
			Start:           pgconv.WallClockFromPgtype(row.StartsAt, s.loc),
			DurationMinutes: int(row.DurationMinutes),
			PaymentStatus:   row.PaymentStatus,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
