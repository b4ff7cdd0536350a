//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"consult-booking/internal/handler/api"
	"consult-booking/internal/usecase/commands"
	"consult-booking/tests/common/httptest"
	commandsmock "consult-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/mock/gomock"
)

const (
	webhookTestSecret = "whsec_test_secret"
	webhookURL        = "/webhooks/stripe"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	payments *commandsmock.MockPaymentCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.payments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	h := api.NewWebhookHandler(s.payments, webhookTestSecret, 5*time.Minute)

	s.router.POST(webhookURL, h.Stripe)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) eventPayload(id, eventType string, session map[string]any) []byte {
	body, err := json.Marshal(map[string]any{
		"id":          id,
		"object":      "event",
		"type":        eventType,
		"created":     time.Now().Unix(),
		"api_version": stripe.APIVersion,
		"data":        map[string]any{"object": session},
	})
	s.Require().NoError(err)
	return body
}

func (s *WebhookHandlerTestSuite) signed(payload []byte) map[string]string {
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    webhookTestSecret,
		Timestamp: time.Now(),
	})
	return map[string]string{"Stripe-Signature": sp.Header}
}

func (s *WebhookHandlerTestSuite) decodeStatus(body []byte) string {
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(body, &resp))
	return resp["status"]
}

// ================================================================================
// TestStripe
// ================================================================================

func (s *WebhookHandlerTestSuite) TestStripe() {
	s.Run("success: paid checkout applies the payment", func() {
		payload := s.eventPayload("evt_paid", "checkout.session.completed", map[string]any{
			"id":                  "cs_test_1",
			"object":              "checkout.session",
			"client_reference_id": "apt_abc",
			"payment_status":      "paid",
		})
		s.payments.EXPECT().HandleCheckoutCompleted(gomock.Any(), commands.PaymentEvent{
			EventID:   "evt_paid",
			EventType: "checkout.session.completed",
			Reference: "apt_abc",
		}).Return(commands.OutcomePaid, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, payload, s.signed(payload))
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Equal(commands.OutcomePaid, s.decodeStatus(rec.Body.Bytes()))
	})

	s.Run("success: reference falls back to session metadata", func() {
		payload := s.eventPayload("evt_meta", "checkout.session.async_payment_succeeded", map[string]any{
			"id":             "cs_test_2",
			"object":         "checkout.session",
			"payment_status": "paid",
			"metadata":       map[string]string{"booking_reference": "apt_meta"},
		})
		s.payments.EXPECT().HandleCheckoutCompleted(gomock.Any(), commands.PaymentEvent{
			EventID:   "evt_meta",
			EventType: "checkout.session.async_payment_succeeded",
			Reference: "apt_meta",
		}).Return(commands.OutcomeAlreadySettled, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, payload, s.signed(payload))
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Equal(commands.OutcomeAlreadySettled, s.decodeStatus(rec.Body.Bytes()))
	})

	s.Run("success: expired and failed sessions release the slot", func() {
		for _, eventType := range []string{"checkout.session.expired", "checkout.session.async_payment_failed"} {
			payload := s.eventPayload("evt_"+eventType, eventType, map[string]any{
				"id":                  "cs_test_3",
				"object":              "checkout.session",
				"client_reference_id": "apt_abc",
				"payment_status":      "unpaid",
			})
			s.payments.EXPECT().HandleCheckoutExpired(gomock.Any(), gomock.Any()).Return(commands.OutcomeCanceled, nil).Times(1)

			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, payload, s.signed(payload))
			s.Equal(http.StatusOK, rec.Code, rec.Body.String())
			s.Equal(commands.OutcomeCanceled, s.decodeStatus(rec.Body.Bytes()))
		}
	})

	s.Run("success: unpaid completion waits for the async result", func() {
		payload := s.eventPayload("evt_unpaid", "checkout.session.completed", map[string]any{
			"id":                  "cs_test_4",
			"object":              "checkout.session",
			"client_reference_id": "apt_abc",
			"payment_status":      "unpaid",
		})

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, payload, s.signed(payload))
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("awaiting_payment", s.decodeStatus(rec.Body.Bytes()))
	})

	s.Run("success: unrelated events are ignored", func() {
		payload := s.eventPayload("evt_other", "customer.created", map[string]any{"id": "cus_1", "object": "customer"})

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, payload, s.signed(payload))
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("ignored", s.decodeStatus(rec.Body.Bytes()))
	})

	s.Run("error: 400 Bad Request without signature header", func() {
		payload := s.eventPayload("evt_nosig", "checkout.session.completed", map[string]any{"id": "cs"})

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, payload, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "missing Stripe-Signature header")
	})

	s.Run("error: 400 Bad Request for tampered payload", func() {
		payload := s.eventPayload("evt_tamper", "checkout.session.completed", map[string]any{"id": "cs", "payment_status": "paid"})
		headers := s.signed(payload)
		tampered := s.eventPayload("evt_tamper", "checkout.session.completed", map[string]any{"id": "cs", "payment_status": "paid", "client_reference_id": "apt_other"})

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, tampered, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid signature")
	})

	s.Run("error: 500 so the provider retries on storage failure", func() {
		payload := s.eventPayload("evt_fail", "checkout.session.completed", map[string]any{
			"id":                  "cs_test_5",
			"object":              "checkout.session",
			"client_reference_id": "apt_abc",
			"payment_status":      "paid",
		})
		s.payments.EXPECT().HandleCheckoutCompleted(gomock.Any(), gomock.Any()).Return("", errors.New("db down")).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, payload, s.signed(payload))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "failed to apply payment event")
	})
}

func TestWebhookHandler_NotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := api.NewWebhookHandler(commandsmock.NewMockPaymentCommands(gomock.NewController(t)), "", time.Minute)
	router.POST(webhookURL, h.Stripe)

	rec := httptest.PerformRawRequest(t, router, http.MethodPost, webhookURL, []byte(`{}`), map[string]string{"Stripe-Signature": "t=1,v1=abc"})
	httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "stripe webhook not configured")
}
