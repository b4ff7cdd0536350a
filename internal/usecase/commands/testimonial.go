package commands

import (
	"context"
	"log/slog"
	"time"

	"consult-booking/internal/domain/testimonial"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitTestimonialInput struct {
	AuthorName  string
	AuthorTitle string
	Rating      int
	Quote       string
}

type TestimonialCommands interface {
	Submit(ctx context.Context, input SubmitTestimonialInput) (*queries.TestimonialView, error)
	Approve(ctx context.Context, id uuid.UUID) (*queries.TestimonialView, error)
	Reject(ctx context.Context, id uuid.UUID) (*queries.TestimonialView, error)
}

type testimonialUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTestimonialUseCase(uow shared.UnitOfWork, clk clock.Clock) TestimonialCommands {
	return &testimonialUseCaseImpl{uow: uow, clock: clk}
}

func (uc *testimonialUseCaseImpl) Submit(ctx context.Context, input SubmitTestimonialInput) (*queries.TestimonialView, error) {
	t, err := testimonial.NewTestimonial(input.AuthorName, input.AuthorTitle, input.Rating, input.Quote, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Testimonials().Create(ctx, tx.DB(), t)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("testimonial submitted", "testimonial_id", t.ID(), "rating", t.Rating().Value())
	return testimonialView(t), nil
}

func (uc *testimonialUseCaseImpl) Approve(ctx context.Context, id uuid.UUID) (*queries.TestimonialView, error) {
	return uc.moderate(ctx, id, (*testimonial.Testimonial).Approve)
}

func (uc *testimonialUseCaseImpl) Reject(ctx context.Context, id uuid.UUID) (*queries.TestimonialView, error) {
	return uc.moderate(ctx, id, (*testimonial.Testimonial).Reject)
}

func (uc *testimonialUseCaseImpl) moderate(ctx context.Context, id uuid.UUID, decide func(*testimonial.Testimonial, time.Time) error) (*queries.TestimonialView, error) {
	var moderated *testimonial.Testimonial
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Testimonials().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(ErrTestimonialNotFound, "id %s", id)
			}
			return err
		}
		if err := decide(t, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Testimonials().UpdateStatus(ctx, tx.DB(), t); err != nil {
			return err
		}
		moderated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("testimonial moderated", "testimonial_id", id, "status", moderated.Status().String())
	return testimonialView(moderated), nil
}

func testimonialView(t *testimonial.Testimonial) *queries.TestimonialView {
	return &queries.TestimonialView{
		ID:          t.ID(),
		AuthorName:  t.Author().Name(),
		AuthorTitle: t.Author().Title(),
		Rating:      t.Rating().Value(),
		Quote:       t.Quote().String(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
	}
}
