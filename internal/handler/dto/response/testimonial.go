package response

import (
	"consult-booking/internal/usecase/queries"
)

type TestimonialResponse struct {
	ID          string `json:"id"`
	AuthorName  string `json:"author_name"`
	AuthorTitle string `json:"author_title,omitempty"`
	Rating      int    `json:"rating"`
	Quote       string `json:"quote"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
}

func FromTestimonialView(v *queries.TestimonialView) *TestimonialResponse {
	return &TestimonialResponse{
		ID:          v.ID.String(),
		AuthorName:  v.AuthorName,
		AuthorTitle: v.AuthorTitle,
		Rating:      v.Rating,
		Quote:       v.Quote,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt.Unix(),
	}
}

func FromTestimonialList(items []*queries.TestimonialView) []*TestimonialResponse {
	res := make([]*TestimonialResponse, len(items))
	for i, it := range items {
		res[i] = FromTestimonialView(it)
	}
	return res
}
