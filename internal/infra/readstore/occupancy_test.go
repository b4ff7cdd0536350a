//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"consult-booking/internal/infra"
	"consult-booking/internal/infra/readstore"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/shared"
	readstoremock "consult-booking/tests/mock/readstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOccupancyReadStore_Between(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		rows          []sqlc.ListOccupanciesBetweenRow
		queryErr      error
		expected      []shared.OccupancySnapshot
		expectedError bool
	}{
		{
			name: "success: snapshots keep status and creation time",
			rows: []sqlc.ListOccupanciesBetweenRow{
				{
					StartsAt:        pgconv.WallClockToPgtype(time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)),
					DurationMinutes: 60,
					PaymentStatus:   "pending",
					CreatedAt:       pgconv.TimeToPgtype(createdAt),
				},
				{
					StartsAt:        pgconv.WallClockToPgtype(time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)),
					DurationMinutes: 90,
					PaymentStatus:   "paid",
					CreatedAt:       pgconv.TimeToPgtype(createdAt),
				},
			},
			expected: []shared.OccupancySnapshot{
				{Start: time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC), DurationMinutes: 60, PaymentStatus: "pending", CreatedAt: createdAt},
				{Start: time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC), DurationMinutes: 90, PaymentStatus: "paid", CreatedAt: createdAt},
			},
		},
		{name: "success: empty day", rows: nil, expected: []shared.OccupancySnapshot{}},
		{name: "error: database error", queryErr: errDBConnectionLost, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockOccupancyReadQueries(ctrl)
			store := readstore.NewOccupancyReadStore(mockQueries, &mockDBTX{}, time.UTC)

			mockQueries.EXPECT().ListOccupanciesBetween(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListOccupanciesBetweenParams) ([]sqlc.ListOccupanciesBetweenRow, error) {
					assert.Equal(t, from, arg.WindowFrom.Time)
					assert.Equal(t, to, arg.WindowTo.Time)
					return tc.rows, tc.queryErr
				})

			got, err := store.Between(ctx, from, to)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
