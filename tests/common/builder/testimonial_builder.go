//go:build unit || e2e

package builder

import (
	"time"

	domtestimonial "consult-booking/internal/domain/testimonial"
	reqdto "consult-booking/internal/handler/dto/request"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TestimonialBuilder struct {
	AuthorName  string
	AuthorTitle string
	Rating      int
	Quote       string
	Status      string
	CreatedAt   time.Time
}

func NewTestimonialBuilder() *TestimonialBuilder {
	return &TestimonialBuilder{
		AuthorName:  "Grace Hopper",
		AuthorTitle: "Founder, Compiler Co.",
		Rating:      5,
		Quote:       "Sharp analysis and a clear plan.",
		Status:      string(domtestimonial.StatusPending),
		CreatedAt:   time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *TestimonialBuilder) WithRating(rating int) *TestimonialBuilder {
	b.Rating = rating
	return b
}

func (b *TestimonialBuilder) WithQuote(quote string) *TestimonialBuilder {
	b.Quote = quote
	return b
}

func (b *TestimonialBuilder) WithAuthor(name, title string) *TestimonialBuilder {
	b.AuthorName = name
	b.AuthorTitle = title
	return b
}

func (b *TestimonialBuilder) WithStatus(s domtestimonial.Status) *TestimonialBuilder {
	b.Status = string(s)
	return b
}

func (b *TestimonialBuilder) BuildDomain() (*domtestimonial.Testimonial, error) {
	return domtestimonial.NewTestimonial(b.AuthorName, b.AuthorTitle, b.Rating, b.Quote, b.CreatedAt)
}

func (b *TestimonialBuilder) BuildReconstructed() *domtestimonial.Testimonial {
	t, err := domtestimonial.Reconstruct(uuid.New(), b.AuthorName, b.AuthorTitle, b.Rating, b.Quote, b.Status, b.CreatedAt, b.CreatedAt, nil)
	if err != nil {
		panic(err)
	}
	return t
}

func (b *TestimonialBuilder) BuildCreateRequestDTO() reqdto.SubmitTestimonialRequest {
	return reqdto.SubmitTestimonialRequest{
		AuthorName:  b.AuthorName,
		AuthorTitle: b.AuthorTitle,
		Rating:      b.Rating,
		Quote:       b.Quote,
	}
}

func (b *TestimonialBuilder) BuildView() *queries.TestimonialView {
	return &queries.TestimonialView{
		ID:          uuid.New(),
		AuthorName:  b.AuthorName,
		AuthorTitle: b.AuthorTitle,
		Rating:      b.Rating,
		Quote:       b.Quote,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}
