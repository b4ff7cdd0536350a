package repository

import (
	"context"

	"consult-booking/internal/domain/testimonial"
	"consult-booking/internal/infra"
	"consult-booking/internal/infra/repository/converter"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TestimonialWriteQueries interface {
	CreateTestimonial(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTestimonialParams) (uuid.UUID, error)
	UpdateTestimonialStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTestimonialStatusParams) (int64, error)
	GetTestimonialByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Testimonials, error)
}

type TestimonialRepository struct {
	queries TestimonialWriteQueries
	db      sqlc.DBTX
}

func NewTestimonialRepository(queries TestimonialWriteQueries, db sqlc.DBTX) *TestimonialRepository {
	return &TestimonialRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, tx sqlc.DBTX, t *testimonial.Testimonial) (uuid.UUID, error) {
	id, err := r.queries.CreateTestimonial(ctx, tx, converter.TestimonialToCreateParams(t))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create testimonial", err)
	}
	return id, nil
}

func (r *TestimonialRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, t *testimonial.Testimonial) error {
	params := sqlc.UpdateTestimonialStatusParams{
		ID:         t.ID(),
		Status:     t.Status().String(),
		ReviewedAt: pgconv.TimePtrToPgtype(t.ReviewedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(t.UpdatedAt()),
	}
	n, err := r.queries.UpdateTestimonialStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update testimonial status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("testimonial not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TestimonialRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*testimonial.Testimonial, error) {
	row, err := r.queries.GetTestimonialByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("testimonial not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock testimonial", err)
	}

	t, err := converter.TestimonialFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored testimonial is invalid", err)
	}
	return t, nil
}
