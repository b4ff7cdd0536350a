//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"consult-booking/internal/domain/appointment"
	"consult-booking/internal/domain/availability"
	"consult-booking/internal/handler/api"
	"consult-booking/internal/usecase/queries"
	"consult-booking/tests/common/httptest"
	queriesmock "consult-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	mockCatalog *queriesmock.MockCatalogQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	h := api.NewAvailabilityHandler(s.mockQueries, s.mockCatalog)
	catalog := api.NewCatalogHandler(s.mockCatalog)

	s.router.GET("/services", catalog.ListServices)
	s.router.GET("/availability/times", h.Times)
	s.router.GET("/availability/check", h.Check)
	s.router.GET("/availability/dates", h.Dates)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestTimes
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestTimes() {
	s.Run("success: returns start times for an explicit duration", func() {
		s.mockQueries.EXPECT().AvailableTimes(gomock.Any(), "2026-10-15", 60).
			Return(&queries.AvailableTimesView{Date: "2026-10-15", DurationMinutes: 60, Times: []string{"10:00", "10:15"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/times?date=2026-10-15&duration=60", nil, "")

		var response queries.AvailableTimesView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"10:00", "10:15"}, response.Times)
		s.Equal(60, response.DurationMinutes)
	})

	s.Run("success: service type supplies the typical duration", func() {
		s.mockCatalog.EXPECT().TypicalDuration("analysis").Return(90, nil).Times(1)
		s.mockQueries.EXPECT().AvailableTimes(gomock.Any(), "2026-10-15", 90).
			Return(&queries.AvailableTimesView{Date: "2026-10-15", DurationMinutes: 90, Times: []string{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/times?date=2026-10-15&service=analysis", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps request problems to 400", func() {
		testCases := []struct {
			name        string
			url         string
			setup       func()
			expectedMsg string
		}{
			{
				name:        "no duration and no service",
				url:         "/availability/times?date=2026-10-15",
				expectedMsg: "duration or service is required",
			},
			{
				name:        "duration is not an integer",
				url:         "/availability/times?date=2026-10-15&duration=long",
				expectedMsg: "duration must be an integer",
			},
			{
				name: "unknown service",
				url:  "/availability/times?date=2026-10-15&service=massage",
				setup: func() {
					s.mockCatalog.EXPECT().TypicalDuration("massage").Return(0, appointment.ErrUnknownServiceType).Times(1)
				},
				expectedMsg: "unknown service type",
			},
			{
				name: "duration outside the allowed lengths",
				url:  "/availability/times?date=2026-10-15&duration=50",
				setup: func() {
					s.mockQueries.EXPECT().AvailableTimes(gomock.Any(), "2026-10-15", 50).
						Return(nil, availability.ErrInvalidDuration).Times(1)
				},
				expectedMsg: "duration is not an allowed appointment length",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				if tc.setup != nil {
					tc.setup()
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 503 Service Unavailable when bookings cannot be loaded", func() {
		s.mockQueries.EXPECT().AvailableTimes(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrAvailabilityUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/times?date=2026-10-15&duration=60", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Internal error")
	})
}

// ================================================================================
// TestCheck
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCheck() {
	s.Run("success: reports slot availability", func() {
		s.mockQueries.EXPECT().CheckSlot(gomock.Any(), "2026-10-15", "14:00", 60).
			Return(&queries.SlotCheckView{Date: "2026-10-15", StartTime: "14:00", DurationMinutes: 60, Available: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/check?date=2026-10-15&time=14:00&duration=60", nil, "")

		var response queries.SlotCheckView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.Equal("14:00", response.StartTime)
	})

	s.Run("error: 400 Bad Request for off-grid time", func() {
		s.mockQueries.EXPECT().CheckSlot(gomock.Any(), "2026-10-15", "14:05", 60).
			Return(nil, availability.ErrInvalidTime).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/check?date=2026-10-15&time=14:05&duration=60", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start time is not a valid slot time")
	})
}

// ================================================================================
// TestDates
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestDates() {
	s.Run("success: defaults to five dates", func() {
		s.mockQueries.EXPECT().QuickDates(gomock.Any(), 5, 60).
			Return(&queries.QuickDatesView{DurationMinutes: 60, Dates: []string{"2026-10-15", "2026-10-16"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/dates?duration=60", nil, "")

		var response queries.QuickDatesView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"2026-10-15", "2026-10-16"}, response.Dates)
	})

	s.Run("success: explicit count is forwarded", func() {
		s.mockQueries.EXPECT().QuickDates(gomock.Any(), 2, 45).
			Return(&queries.QuickDatesView{DurationMinutes: 45, Dates: []string{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/dates?duration=45&count=2", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for non-numeric count", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/dates?duration=60&count=few", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "count must be an integer")
	})

	s.Run("error: 400 Bad Request for zero count", func() {
		s.mockQueries.EXPECT().QuickDates(gomock.Any(), 0, 60).Return(nil, availability.ErrInvalidCount).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/dates?duration=60&count=0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "count must be positive")
	})
}

// ================================================================================
// TestListServices
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestListServices() {
	s.Run("success: returns the catalog", func() {
		s.mockCatalog.EXPECT().ListServices().Return([]queries.ServiceView{
			{Type: "consultation", Name: "Consultation", TypicalDuration: 60, HourlyRateCents: 15000},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")

		var response struct {
			Services []queries.ServiceView `json:"services"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Services, 1)
		s.Equal("consultation", response.Services[0].Type)
	})

	s.Run("error: 500 when the catalog is misconfigured", func() {
		s.mockCatalog.EXPECT().ListServices().Return(nil, errors.New("bad schedule")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
