//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid argument", err: errs.Mark(errs.New("bad date"), errs.ErrInvalidArgument), expected: http.StatusBadRequest},
		{name: "not found", err: errs.Mark(errs.New("no booking"), errs.ErrNotFound), expected: http.StatusNotFound},
		{name: "conflict", err: errs.Mark(errs.New("slot taken"), errs.ErrConflict), expected: http.StatusConflict},
		{name: "unavailable", err: errs.Mark(errs.New("db down"), errs.ErrUnavailable), expected: http.StatusServiceUnavailable},
		{name: "mark survives wrapping", err: errs.Wrap(errs.Mark(errs.New("slot taken"), errs.ErrConflict), "create booking"), expected: http.StatusConflict},
		{name: "unmarked", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, httperr.StatusOf(tc.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client errors expose the error text", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.Abort(c, errs.Mark(errs.New("slot is no longer available"), errs.ErrConflict), "Create booking failed")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.True(t, c.IsAborted())
		assert.Contains(t, w.Body.String(), "slot is no longer available")
		require.Len(t, c.Errors, 1)
		assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
		resp, ok := c.Errors[0].Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, resp.Status)
	})

	t.Run("server errors hide internals behind the fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.Abort(c, errors.New("pq: connection refused"), "Create booking failed")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Create booking failed")
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestAbortWithError_NilPanics(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid request", nil)
	})
}
