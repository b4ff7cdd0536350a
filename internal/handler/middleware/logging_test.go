//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"consult-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogging(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return r
}

func TestRequestLogging_RequestID(t *testing.T) {
	testCases := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "generated when absent", incoming: "", reused: false},
		{name: "caller id is reused", incoming: "abc-123", reused: true},
		{name: "overlong id is replaced", incoming: strings.Repeat("x", 65), reused: false},
		{name: "id with spaces is replaced", incoming: "abc 123", reused: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tc.incoming)
			}
			rec := httptest.NewRecorder()
			newLoggedRouter().ServeHTTP(rec, req)

			got := rec.Header().Get(middleware.RequestIDHeader)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, rec.Body.String())
			if tc.reused {
				assert.Equal(t, tc.incoming, got)
			} else {
				assert.NotEqual(t, tc.incoming, got)
			}
		})
	}
}
