package api

import (
	"net/http"

	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List services
// @Description List bookable service types with their durations and prices
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ServiceView
// @Failure 500 {object} httperr.Response
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.q.ListServices()
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
