package testimonial

import (
	"time"

	"consult-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating = errs.Mark(errs.New("rating must be between 1 and 5"), errs.ErrInvalidArgument)
	ErrEmptyQuote    = errs.Mark(errs.New("quote cannot be empty"), errs.ErrInvalidArgument)
	ErrQuoteTooLong  = errs.Mark(errs.New("quote is too long"), errs.ErrInvalidArgument)
	ErrEmptyAuthor   = errs.Mark(errs.New("author name is required"), errs.ErrInvalidArgument)
	ErrAuthorTooLong = errs.Mark(errs.New("author field is too long"), errs.ErrInvalidArgument)
	ErrInvalidStatus = errs.Mark(errs.New("unknown testimonial status"), errs.ErrInvalidArgument)

	ErrAlreadyReviewed = errs.Mark(errs.New("testimonial has already been moderated"), errs.ErrConflict)
)

type Testimonial struct {
	id         uuid.UUID
	author     Author
	rating     Rating
	quote      Quote
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	reviewedAt *time.Time
}

func NewTestimonial(authorName, authorTitle string, ratingValue int, quoteText string, now time.Time) (*Testimonial, error) {
	author, err := NewAuthor(authorName, authorTitle)
	if err != nil {
		return nil, err
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	quote, err := NewQuote(quoteText)
	if err != nil {
		return nil, err
	}

	return &Testimonial{
		id:        uuid.New(),
		author:    author,
		rating:    rating,
		quote:     quote,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, authorName, authorTitle string, rating int, quote, status string, createdAt, updatedAt time.Time, reviewedAt *time.Time) (*Testimonial, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return &Testimonial{
		id:         id,
		author:     Author{name: authorName, title: authorTitle},
		rating:     Rating{value: rating},
		quote:      Quote{text: quote},
		status:     st,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		reviewedAt: reviewedAt,
	}, nil
}

// Approve publishes a pending testimonial.
func (t *Testimonial) Approve(now time.Time) error {
	return t.moderate(StatusApproved, now)
}

func (t *Testimonial) Reject(now time.Time) error {
	return t.moderate(StatusRejected, now)
}

func (t *Testimonial) moderate(to Status, now time.Time) error {
	if t.status != StatusPending {
		return errs.Wrapf(ErrAlreadyReviewed, "status %s", t.status)
	}
	t.status = to
	t.updatedAt = now
	t.reviewedAt = &now
	return nil
}

func (t *Testimonial) ID() uuid.UUID          { return t.id }
func (t *Testimonial) Author() Author         { return t.author }
func (t *Testimonial) Rating() Rating         { return t.rating }
func (t *Testimonial) Quote() Quote           { return t.quote }
func (t *Testimonial) Status() Status         { return t.status }
func (t *Testimonial) CreatedAt() time.Time   { return t.createdAt }
func (t *Testimonial) UpdatedAt() time.Time   { return t.updatedAt }
func (t *Testimonial) ReviewedAt() *time.Time { return t.reviewedAt }
