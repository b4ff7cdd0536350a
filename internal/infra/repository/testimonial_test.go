//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"consult-booking/internal/domain/testimonial"
	"consult-booking/internal/infra"
	"consult-booking/internal/infra/repository"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/tests/common/builder"
	repositorymock "consult-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTestimonialRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
	}{
		{name: "success: testimonial stored as pending"},
		{name: "error: database error occurs", queryErr: errDBConnection, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockTestimonialWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTestimonialRepository(mockQueries, mockDB)

			tm, err := builder.NewTestimonialBuilder().WithAuthor("Grace Hopper", "").BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateTestimonial(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateTestimonialParams) (uuid.UUID, error) {
					assert.Equal(t, "pending", arg.Status)
					assert.False(t, arg.AuthorTitle.Valid, "empty title is stored as NULL")
					if tc.queryErr != nil {
						return uuid.Nil, tc.queryErr
					}
					return arg.ID, nil
				})

			id, err := repo.Create(ctx, mockDB, tm)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tm.ID(), id)
		})
	}
}

func TestTestimonialRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: moderation stored", affected: 1},
		{name: "error: testimonial not found", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errDBConnection, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockTestimonialWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTestimonialRepository(mockQueries, mockDB)

			tm := builder.NewTestimonialBuilder().BuildReconstructed()
			require.NoError(t, tm.Approve(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)))

			mockQueries.EXPECT().UpdateTestimonialStatus(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateTestimonialStatusParams) (int64, error) {
					assert.Equal(t, "approved", arg.Status)
					assert.True(t, arg.ReviewedAt.Valid)
					return tc.affected, tc.queryErr
				})

			err := repo.UpdateStatus(ctx, mockDB, tm)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTestimonialRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	createdAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	row := sqlc.Testimonials{
		ID:         id,
		AuthorName: "Grace Hopper",
		Rating:     4,
		Quote:      "Clear plan.",
		Status:     "pending",
		CreatedAt:  pgconv.TimeToPgtype(createdAt),
		UpdatedAt:  pgconv.TimeToPgtype(createdAt),
	}

	testCases := []struct {
		name          string
		row           sqlc.Testimonials
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: testimonial reconstructed", row: row},
		{name: "error: testimonial not found", queryErr: pgx.ErrNoRows, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errDBConnection, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockTestimonialWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTestimonialRepository(mockQueries, mockDB)

			mockQueries.EXPECT().GetTestimonialByIDForUpdate(ctx, mockDB, id).Return(tc.row, tc.queryErr)

			got, err := repo.FindByIDForUpdate(ctx, mockDB, id)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID())
			assert.Equal(t, testimonial.StatusPending, got.Status())
			assert.Equal(t, 4, got.Rating().Value())
			assert.Equal(t, "", got.Author().Title())
		})
	}
}
