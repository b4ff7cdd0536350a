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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentEventRepository_Record(t *testing.T) {
	ctx := context.Background()
	appointmentID := uuid.New()

	testCases := []struct {
		name          string
		appointmentID *uuid.UUID
		affected      int64
		queryErr      error
		expected      bool
		expectedError bool
	}{
		{name: "success: new event recorded", appointmentID: &appointmentID, affected: 1, expected: true},
		{name: "success: replayed event reported", appointmentID: &appointmentID, affected: 0, expected: false},
		{name: "success: event without appointment", appointmentID: nil, affected: 1, expected: true},
		{name: "error: database error occurs", queryErr: errDBConnection, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentEventRepository(mockQueries, mockDB)

			mockQueries.EXPECT().InsertPaymentEvent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (int64, error) {
					assert.Equal(t, "evt_1", arg.EventID)
					assert.Equal(t, "checkout.session.completed", arg.EventType)
					assert.Equal(t, tc.appointmentID != nil, arg.AppointmentID.Valid)
					assert.Equal(t, "paid", arg.Outcome)
					return tc.affected, tc.queryErr
				})

			inserted, err := repo.Record(ctx, mockDB, "evt_1", "checkout.session.completed", tc.appointmentID, "paid")
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

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	payload := []byte(`{"type":"booking_created"}`)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
			assert.Equal(t, "email", arg.Kind)
			assert.Equal(t, "booking_created", arg.Topic)
			assert.Equal(t, "queued", arg.Status)
			assert.Equal(t, runAt, arg.RunAt.Time)
			assert.JSONEq(t, string(payload), string(arg.Payload))
			return nil
		})

	require.NoError(t, repo.CreateJob(ctx, mockDB, "email", "booking_created", payload, runAt))
}
