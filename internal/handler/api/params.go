package api

import (
	"strconv"

	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidQueryParam = errs.Mark(errs.New("invalid query parameter"), errs.ErrInvalidArgument)

func intQuery(c *gin.Context, name string) (int, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, errs.Wrapf(errInvalidQueryParam, "%s must be an integer", name)
	}
	return v, true, nil
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func withNextCursor(resp gin.H, next *queries.Cursor) gin.H {
	if next != nil {
		resp["next_cursor"] = next.After
	}
	return resp
}
