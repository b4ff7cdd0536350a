package queries

import (
	"context"
	"time"

	"consult-booking/internal/domain/testimonial"

	"github.com/google/uuid"
)

type TestimonialReadStore interface {
	FindByStatusFirstPage(ctx context.Context, status string, limit int32) ([]*TestimonialView, error)
	FindByStatusKeyset(ctx context.Context, status string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*TestimonialView, error)
}

type TestimonialQueries interface {
	ListApproved(ctx context.Context, cursor *Cursor, limit int) ([]*TestimonialView, *Cursor, error)
	ListByStatus(ctx context.Context, status string, cursor *Cursor, limit int) ([]*TestimonialView, *Cursor, error)
}

type testimonialQueriesImpl struct {
	store TestimonialReadStore
}

func NewTestimonialQueries(store TestimonialReadStore) TestimonialQueries {
	return &testimonialQueriesImpl{store: store}
}

func (q *testimonialQueriesImpl) ListApproved(ctx context.Context, cursor *Cursor, limit int) ([]*TestimonialView, *Cursor, error) {
	return q.list(ctx, testimonial.StatusApproved, cursor, limit)
}

// ListByStatus is the moderation queue; an empty status means pending.
func (q *testimonialQueriesImpl) ListByStatus(ctx context.Context, status string, cursor *Cursor, limit int) ([]*TestimonialView, *Cursor, error) {
	if status == "" {
		return q.list(ctx, testimonial.StatusPending, cursor, limit)
	}
	parsed, err := testimonial.ParseStatus(status)
	if err != nil {
		return nil, nil, err
	}
	return q.list(ctx, parsed, cursor, limit)
}

func (q *testimonialQueriesImpl) list(ctx context.Context, status testimonial.Status, cursor *Cursor, limit int) ([]*TestimonialView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*TestimonialView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByStatusFirstPage(ctx, status.String(), int32(limit+1)) // #nosec G115 -- limit is capped
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.FindByStatusKeyset(ctx, status.String(), lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- limit is capped
	}
	if err != nil {
		return nil, nil, err
	}

	page, next := paginate(rows, limit, func(v *TestimonialView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return page, next, nil
}
