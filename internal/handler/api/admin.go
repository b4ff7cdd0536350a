package api

import (
	"context"
	"net/http"

	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	bookings         commands.BookingCommands
	bookingQueries   queries.BookingQueries
	testimonials     commands.TestimonialCommands
	testimonialQuery queries.TestimonialQueries
	notifications    queries.NotificationQueries
}

func NewAdminHandler(
	bookings commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	testimonials commands.TestimonialCommands,
	testimonialQuery queries.TestimonialQueries,
	notifications queries.NotificationQueries,
) *AdminHandler {
	return &AdminHandler{
		bookings:         bookings,
		bookingQueries:   bookingQueries,
		testimonials:     testimonials,
		testimonialQuery: testimonialQuery,
		notifications:    notifications,
	}
}

// @Summary List bookings
// @Description Bookings newest first, optionally filtered by payment status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, paid or canceled"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.AdminBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var filter queries.BookingFilter
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	cursor, limit := pageParams(c)
	items, next, err := h.bookingQueries.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, withNextCursor(gin.H{"bookings": resdto.FromAdminBookingList(items)}, next))
}

// @Summary Get booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.AdminBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *AdminHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminBookingView(view))
}

// @Summary Delete booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.bookings.DeleteBooking(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Moderation queue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending (default), approved or rejected"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.TestimonialResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/testimonials [get]
func (h *AdminHandler) ListTestimonials(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.testimonialQuery.ListByStatus(c.Request.Context(), c.Query("status"), cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, withNextCursor(gin.H{"testimonials": resdto.FromTestimonialList(items)}, next))
}

// @Summary Approve testimonial
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} resdto.TestimonialResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/testimonials/{id}/approve [post]
func (h *AdminHandler) ApproveTestimonial(c *gin.Context) {
	h.moderate(c, h.testimonials.Approve)
}

// @Summary Reject testimonial
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} resdto.TestimonialResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/testimonials/{id}/reject [post]
func (h *AdminHandler) RejectTestimonial(c *gin.Context) {
	h.moderate(c, h.testimonials.Reject)
}

func (h *AdminHandler) moderate(c *gin.Context, decide func(ctx context.Context, id uuid.UUID) (*queries.TestimonialView, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := decide(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Moderation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTestimonialView(view))
}

// @Summary Pending notifications
// @Description Queued customer emails that have not been delivered yet
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} queries.NotificationJobView
// @Router /admin/notifications [get]
func (h *AdminHandler) ListPendingNotifications(c *gin.Context) {
	_, limit := pageParams(c)
	jobs, err := h.notifications.ListPending(c.Request.Context(), limit)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": jobs})
}
