//go:build unit

package testimonial_test

import (
	"strings"
	"testing"
	"time"

	"consult-booking/internal/domain/testimonial"
	"consult-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.TestimonialBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewTestimonialBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestTestimonial(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewTestimonialBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, testimonial.StatusPending, actual.Status())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Grace Hopper", actual.Author().Name())
		assert.Nil(t, actual.ReviewedAt())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "below minimum", mutate: func(b *builder.TestimonialBuilder) { b.WithRating(0) }, errIs: testimonial.ErrInvalidRating},
			{name: "minimum", mutate: func(b *builder.TestimonialBuilder) { b.WithRating(1) }},
			{name: "maximum", mutate: func(b *builder.TestimonialBuilder) { b.WithRating(5) }},
			{name: "above maximum", mutate: func(b *builder.TestimonialBuilder) { b.WithRating(6) }, errIs: testimonial.ErrInvalidRating},
		})
	})

	t.Run("quote validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "max length", mutate: func(b *builder.TestimonialBuilder) { b.WithQuote(strings.Repeat("q", testimonial.MaxQuoteLength)) }},
			{name: "too long", mutate: func(b *builder.TestimonialBuilder) { b.WithQuote(strings.Repeat("q", testimonial.MaxQuoteLength+1)) }, errIs: testimonial.ErrQuoteTooLong},
			{name: "empty", mutate: func(b *builder.TestimonialBuilder) { b.WithQuote("") }, errIs: testimonial.ErrEmptyQuote},
			{name: "whitespace only", mutate: func(b *builder.TestimonialBuilder) { b.WithQuote("   ") }, errIs: testimonial.ErrEmptyQuote},
		})
	})

	t.Run("author validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing name", mutate: func(b *builder.TestimonialBuilder) { b.WithAuthor("", "CTO") }, errIs: testimonial.ErrEmptyAuthor},
			{name: "title optional", mutate: func(b *builder.TestimonialBuilder) { b.WithAuthor("Grace", "") }},
			{name: "title too long", mutate: func(b *builder.TestimonialBuilder) { b.WithAuthor("Grace", strings.Repeat("t", 161)) }, errIs: testimonial.ErrAuthorTooLong},
		})
	})

	t.Run("quote trimming", func(t *testing.T) {
		actual, err := builder.NewTestimonialBuilder().WithQuote("  Trimmed quote  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Trimmed quote", actual.Quote().String())
	})
}

func TestTestimonial_Moderation(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

	t.Run("approve pending", func(t *testing.T) {
		tm := builder.NewTestimonialBuilder().BuildReconstructed()
		require.NoError(t, tm.Approve(now))
		assert.Equal(t, testimonial.StatusApproved, tm.Status())
		require.NotNil(t, tm.ReviewedAt())
		assert.Equal(t, now, *tm.ReviewedAt())
	})

	t.Run("reject pending", func(t *testing.T) {
		tm := builder.NewTestimonialBuilder().BuildReconstructed()
		require.NoError(t, tm.Reject(now))
		assert.Equal(t, testimonial.StatusRejected, tm.Status())
	})

	t.Run("cannot moderate twice", func(t *testing.T) {
		tm := builder.NewTestimonialBuilder().WithStatus(testimonial.StatusApproved).BuildReconstructed()
		assert.ErrorIs(t, tm.Reject(now), testimonial.ErrAlreadyReviewed)
		assert.Equal(t, testimonial.StatusApproved, tm.Status())
	})
}
