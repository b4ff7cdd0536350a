package commands

import "consult-booking/internal/pkg/errs"

var (
	ErrSlotUnavailable       = errs.Mark(errs.New("slot is no longer available"), errs.ErrConflict)
	ErrIdempotencyInProgress = errs.Mark(errs.New("request with this idempotency key is in progress"), errs.ErrConflict)
	ErrIdempotencyKeyReused  = errs.Mark(errs.New("idempotency key was used with a different request"), errs.ErrConflict)
	ErrBookingNotFound       = errs.Mark(errs.New("booking not found for update"), errs.ErrNotFound)
	ErrTestimonialNotFound   = errs.Mark(errs.New("testimonial not found for update"), errs.ErrNotFound)
	ErrInvalidPaymentEvent   = errs.Mark(errs.New("payment event is missing required fields"), errs.ErrInvalidArgument)
)
