package api

import (
	"net/http"

	reqdto "consult-booking/internal/handler/dto/request"
	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	cmds commands.TestimonialCommands
	q    queries.TestimonialQueries
}

func NewTestimonialHandler(cmds commands.TestimonialCommands, q queries.TestimonialQueries) *TestimonialHandler {
	return &TestimonialHandler{cmds: cmds, q: q}
}

// @Summary List testimonials
// @Description Approved testimonials, newest first
// @Tags testimonials
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.TestimonialResponse
// @Failure 400 {object} httperr.Response
// @Router /testimonials [get]
func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListApproved(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, withNextCursor(gin.H{"testimonials": resdto.FromTestimonialList(items)}, next))
}

// @Summary Submit testimonial
// @Description Submit a testimonial for moderation
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitTestimonialRequest true "Testimonial"
// @Success 201 {object} resdto.TestimonialResponse
// @Failure 400 {object} httperr.Response
// @Router /testimonials [post]
func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Submit testimonial failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTestimonialView(view))
}
