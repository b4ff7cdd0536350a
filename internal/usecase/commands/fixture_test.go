//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/shared"
	sharedmock "consult-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// Wednesday; Thursday 2026-10-15 is the first bookable day.
var fixedNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

// txFixture runs every Within callback against one mocked transaction.
type txFixture struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	appointments  *sharedmock.MockAppointmentRepository
	testimonials  *sharedmock.MockTestimonialRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	paymentEvents *sharedmock.MockPaymentEventRepository
	cache         *sharedmock.MockAvailabilityCache
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &txFixture{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		appointments:  sharedmock.NewMockAppointmentRepository(ctrl),
		testimonials:  sharedmock.NewMockTestimonialRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		paymentEvents: sharedmock.NewMockPaymentEventRepository(ctrl),
		cache:         sharedmock.NewMockAvailabilityCache(ctrl),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Appointments().Return(f.appointments).AnyTimes()
	f.tx.EXPECT().Testimonials().Return(f.testimonials).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().PaymentEvents().Return(f.paymentEvents).AnyTimes()
	return f
}

func (f *txFixture) expectNotification(topic string) {
	f.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), commands.JobKindEmail, topic, gomock.Any(), gomock.Any()).
		Return(nil)
}
