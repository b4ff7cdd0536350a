//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"consult-booking/internal/infra"
	"consult-booking/internal/infra/repository"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	repositorymock "consult-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testEndpoint = "POST /api/bookings"

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	expiresAt := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expected      bool
		expectedError bool
	}{
		{name: "success: key claimed", affected: 1, expected: true},
		{name: "success: key already exists", affected: 0, expected: false},
		{name: "error: database error occurs", queryErr: errDBConnection, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, testEndpoint, arg.Endpoint)
					assert.Equal(t, "hash", arg.RequestHash)
					assert.Equal(t, expiresAt, arg.ExpiresAt.Time)
					return tc.affected, tc.queryErr
				})

			inserted, err := repo.TryInsert(ctx, mockDB, key, testEndpoint, "hash", expiresAt)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, inserted)
		})
	}
}

func TestIdempotencyRepository_ClaimExpired(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

	claimed, err := repo.ClaimExpired(ctx, mockDB, key, testEndpoint, "hash", time.Now())
	require.NoError(t, err)
	assert.False(t, claimed, "a concurrent claim wins")
}

func TestIdempotencyRepository_UpdateStatusCompleted(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	appointmentID := uuid.New()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: key completed"},
		{
			name:          "error: appointment reference violated",
			queryErr:      &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateIdempotencyKeyCompleted(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error {
					assert.Equal(t, appointmentID, uuid.UUID(arg.ResultAppointmentID.Bytes))
					assert.Equal(t, "result", arg.ResponseBodyHash.String)
					return tc.queryErr
				})

			err := repo.UpdateStatusCompleted(ctx, mockDB, key, testEndpoint, "result", appointmentID)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIdempotencyRepository_ReleaseAndPurge(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ReleaseIdempotencyKey(ctx, mockDB, sqlc.ReleaseIdempotencyKeyParams{Key: key, Endpoint: testEndpoint}).Return(nil)
	mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, mockDB).Return(int64(2), nil)

	require.NoError(t, repo.Release(ctx, mockDB, key, testEndpoint))

	n, err := repo.DeleteExpired(ctx, mockDB)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
