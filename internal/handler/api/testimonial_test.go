//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"consult-booking/internal/domain/testimonial"
	"consult-booking/internal/handler/api"
	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/usecase/queries"
	"consult-booking/tests/common/builder"
	"consult-booking/tests/common/httptest"
	"consult-booking/tests/common/testutil"
	commandsmock "consult-booking/tests/mock/commands"
	queriesmock "consult-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TestimonialHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTestimonialCommands
	mockQueries  *queriesmock.MockTestimonialQueries
}

func (s *TestimonialHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTestimonialCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTestimonialQueries(s.mockCtrl)
	h := api.NewTestimonialHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/testimonials", h.ListApproved)
	s.router.POST("/testimonials", h.Submit)
}

func (s *TestimonialHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTestimonialHandlerSuite(t *testing.T) {
	suite.Run(t, new(TestimonialHandlerTestSuite))
}

func (s *TestimonialHandlerTestSuite) TestListApproved() {
	s.Run("success: returns approved testimonials", func() {
		view := builder.NewTestimonialBuilder().WithStatus(testimonial.StatusApproved).BuildView()
		s.mockQueries.EXPECT().ListApproved(gomock.Any(), (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return([]*queries.TestimonialView{view}, &queries.Cursor{After: "more"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/testimonials", nil, "")

		var response struct {
			Testimonials []resdto.TestimonialResponse `json:"testimonials"`
			NextCursor   string                       `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Testimonials, 1)
		s.Equal(view.Quote, response.Testimonials[0].Quote)
		s.Equal(view.CreatedAt.Unix(), response.Testimonials[0].CreatedAt)
		s.Equal("more", response.NextCursor)
	})

	s.Run("error: 400 Bad Request for malformed cursor", func() {
		s.mockQueries.EXPECT().ListApproved(gomock.Any(), &queries.Cursor{After: "%%%"}, gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/testimonials?after=%25%25%25", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *TestimonialHandlerTestSuite) TestSubmit() {
	reqBody := builder.NewTestimonialBuilder().BuildCreateRequestDTO()
	view := builder.NewTestimonialBuilder().BuildView()

	s.Run("success: returns 201 Created as pending", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody.ToInput()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/testimonials", reqBody, "")

		var response resdto.TestimonialResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0)},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6)},
			{name: "missing field: author_name", mutate: testutil.Field("author_name", nil)},
			{name: "missing field: quote", mutate: testutil.Field("quote", nil)},
			{name: "missing field: rating", mutate: testutil.Field("rating", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/testimonials", requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: domain validation maps to 400", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, testimonial.ErrQuoteTooLong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/testimonials", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "quote is too long")
	})
}
