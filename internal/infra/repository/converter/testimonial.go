package converter

import (
	"consult-booking/internal/domain/testimonial"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
)

func TestimonialToCreateParams(t *testimonial.Testimonial) sqlc.CreateTestimonialParams {
	return sqlc.CreateTestimonialParams{
		ID:          t.ID(),
		AuthorName:  t.Author().Name(),
		AuthorTitle: pgconv.OptionalStringToPgtype(t.Author().Title()),
		Rating:      pgconv.ClampInt32(t.Rating().Value()),
		Quote:       t.Quote().String(),
		Status:      t.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TestimonialFromInfra(row sqlc.Testimonials) (*testimonial.Testimonial, error) {
	return testimonial.Reconstruct(
		row.ID,
		row.AuthorName,
		pgconv.StringFromPgtype(row.AuthorTitle),
		int(row.Rating),
		row.Quote,
		row.Status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.ReviewedAt),
	)
}
