package api

import (
	"net/http"

	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultQuickDateCount = 5

var errDurationRequired = errs.Mark(errs.New("duration or service is required"), errs.ErrInvalidArgument)

type AvailabilityHandler struct {
	q       queries.AvailabilityQueries
	catalog queries.CatalogQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, catalog queries.CatalogQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, catalog: catalog}
}

// @Summary Available start times
// @Description List legal start times for a date and duration
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query int false "Duration in minutes"
// @Param service query string false "Service type; its typical duration is used when duration is omitted"
// @Success 200 {object} queries.AvailableTimesView
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability/times [get]
func (h *AvailabilityHandler) Times(c *gin.Context) {
	duration, err := h.duration(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	view, err := h.q.AvailableTimes(c.Request.Context(), c.Query("date"), duration)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Check slot
// @Description Check whether a single slot can be booked
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Start time (HH:MM)"
// @Param duration query int false "Duration in minutes"
// @Param service query string false "Service type"
// @Success 200 {object} queries.SlotCheckView
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability/check [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	duration, err := h.duration(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	view, err := h.q.CheckSlot(c.Request.Context(), c.Query("date"), c.Query("time"), duration)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Quick dates
// @Description Next weekdays with at least one free slot
// @Tags availability
// @Produce json
// @Param count query int false "Number of dates (default 5)"
// @Param duration query int false "Duration in minutes"
// @Param service query string false "Service type"
// @Success 200 {object} queries.QuickDatesView
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability/dates [get]
func (h *AvailabilityHandler) Dates(c *gin.Context) {
	duration, err := h.duration(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	count, ok, err := intQuery(c, "count")
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	if !ok {
		count = defaultQuickDateCount
	}
	view, err := h.q.QuickDates(c.Request.Context(), count, duration)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AvailabilityHandler) duration(c *gin.Context) (int, error) {
	d, ok, err := intQuery(c, "duration")
	if err != nil {
		return 0, err
	}
	if ok {
		return d, nil
	}
	if service := c.Query("service"); service != "" {
		return h.catalog.TypicalDuration(service)
	}
	return 0, errDurationRequired
}
