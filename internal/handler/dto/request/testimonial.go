package request

import (
	"strings"

	"consult-booking/internal/usecase/commands"
)

type SubmitTestimonialRequest struct {
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorTitle string `json:"author_title"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Quote       string `json:"quote" binding:"required"`
}

func (r SubmitTestimonialRequest) ToInput() commands.SubmitTestimonialInput {
	return commands.SubmitTestimonialInput{
		AuthorName:  strings.TrimSpace(r.AuthorName),
		AuthorTitle: strings.TrimSpace(r.AuthorTitle),
		Rating:      r.Rating,
		Quote:       strings.TrimSpace(r.Quote),
	}
}
