//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"consult-booking/internal/domain/testimonial"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/commands"
	"consult-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTestimonialCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stored as pending", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewTestimonialUseCase(f.uow, clock.NewMockClock(fixedNow))

		f.testimonials.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, tm *testimonial.Testimonial) (uuid.UUID, error) {
				assert.Equal(t, testimonial.StatusPending, tm.Status())
				return tm.ID(), nil
			})

		view, err := uc.Submit(ctx, commands.SubmitTestimonialInput{AuthorName: "Grace", Rating: 5, Quote: "Great"})
		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, fixedNow, view.CreatedAt)
	})

	t.Run("error: invalid rating never reaches storage", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewTestimonialUseCase(f.uow, clock.NewMockClock(fixedNow))

		_, err := uc.Submit(ctx, commands.SubmitTestimonialInput{AuthorName: "Grace", Rating: 6, Quote: "Great"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, testimonial.ErrInvalidRating))
	})
}

func TestTestimonialCommands_Moderate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		current        testimonial.Status
		approve        bool
		expectedStatus string
		expectedErr    error
	}{
		{name: "approve pending", current: testimonial.StatusPending, approve: true, expectedStatus: "approved"},
		{name: "reject pending", current: testimonial.StatusPending, approve: false, expectedStatus: "rejected"},
		{name: "approve twice conflicts", current: testimonial.StatusApproved, approve: true, expectedErr: testimonial.ErrAlreadyReviewed},
		{name: "reject after approval conflicts", current: testimonial.StatusApproved, approve: false, expectedErr: testimonial.ErrAlreadyReviewed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTxFixture(t)
			uc := commands.NewTestimonialUseCase(f.uow, clock.NewMockClock(fixedNow))

			tm := builder.NewTestimonialBuilder().WithStatus(tc.current).BuildReconstructed()
			f.testimonials.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), tm.ID()).Return(tm, nil)
			if tc.expectedErr == nil {
				f.testimonials.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), tm).Return(nil)
			}

			moderate := uc.Reject
			if tc.approve {
				moderate = uc.Approve
			}
			view, err := moderate(ctx, tm.ID())

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectedErr))
				assert.True(t, errs.Is(err, errs.ErrConflict))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, view.Status)
		})
	}

	t.Run("error: unknown testimonial", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewTestimonialUseCase(f.uow, clock.NewMockClock(fixedNow))

		id := uuid.New()
		f.testimonials.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("testimonial not found", nil, infra.KindNotFound))

		_, err := uc.Approve(ctx, id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, commands.ErrTestimonialNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
