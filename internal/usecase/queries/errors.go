package queries

import "consult-booking/internal/pkg/errs"

var (
	ErrAvailabilityUnavailable = errs.Mark(errs.New("availability could not be loaded"), errs.ErrUnavailable)
	ErrBookingNotFound         = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrTestimonialNotFound     = errs.Mark(errs.New("testimonial not found"), errs.ErrNotFound)
	ErrInvalidCursor           = errs.Mark(errs.New("invalid cursor"), errs.ErrInvalidArgument)
)
