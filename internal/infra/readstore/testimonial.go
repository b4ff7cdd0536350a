package readstore

import (
	"context"
	"time"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TestimonialViewQueries interface {
	ListTestimonialsByStatusFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTestimonialsByStatusFirstPageParams) ([]sqlc.Testimonials, error)
	ListTestimonialsByStatusKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTestimonialsByStatusKeysetParams) ([]sqlc.Testimonials, error)
}

type TestimonialReadStore struct {
	queries TestimonialViewQueries
	db      sqlc.DBTX
}

func NewTestimonialReadStore(queries TestimonialViewQueries, db sqlc.DBTX) *TestimonialReadStore {
	return &TestimonialReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TestimonialReadStore) FindByStatusFirstPage(ctx context.Context, status string, limit int32) ([]*queries.TestimonialView, error) {
	params := sqlc.ListTestimonialsByStatusFirstPageParams{Status: status, RowLimit: limit}
	rows, err := r.queries.ListTestimonialsByStatusFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list testimonials first page", err)
	}
	return toTestimonialViews(rows), nil
}

func (r *TestimonialReadStore) FindByStatusKeyset(ctx context.Context, status string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TestimonialView, error) {
	params := sqlc.ListTestimonialsByStatusKeysetParams{
		Status:    status,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	}
	rows, err := r.queries.ListTestimonialsByStatusKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list testimonials keyset", err)
	}
	return toTestimonialViews(rows), nil
}

func toTestimonialViews(rows []sqlc.Testimonials) []*queries.TestimonialView {
	result := make([]*queries.TestimonialView, len(rows))
	for i, row := range rows {
		result[i] = &queries.TestimonialView{
			ID:          row.ID,
			AuthorName:  row.AuthorName,
			AuthorTitle: pgconv.StringFromPgtype(row.AuthorTitle),
			Rating:      int(row.Rating),
			Quote:       row.Quote,
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
