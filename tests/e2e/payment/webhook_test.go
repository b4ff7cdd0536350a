//go:build e2e

package payment_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"consult-booking/internal/handler/dto/request"
	"consult-booking/internal/handler/dto/response"
	"consult-booking/tests/common/dbtest"
	"consult-booking/tests/common/httptest"
	"consult-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const (
	bookingsURL = "/api/bookings"
	webhookURL  = "/api/webhooks/stripe"
)

type WebhookSuite struct {
	e2e.SharedSuite
}

func (s *WebhookSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestWebhookSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WebhookSuite))
}

func (s *WebhookSuite) createBooking(start string) response.BookingResponse {
	t := s.T()
	req := request.CreateBookingRequest{
		ServiceType:     "analysis",
		Date:            "2026-10-15",
		StartTime:       start,
		DurationMinutes: 90,
		ContactName:     "Grace Hopper",
		ContactEmail:    "grace@example.com",
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *WebhookSuite) sendEvent(eventID, eventType, reference, paymentStatus string) (int, string) {
	t := s.T()
	payload, err := json.Marshal(map[string]any{
		"id":          eventID,
		"object":      "event",
		"type":        eventType,
		"created":     time.Now().Unix(),
		"api_version": stripe.APIVersion,
		"data": map[string]any{"object": map[string]any{
			"id":                  "cs_" + eventID,
			"object":              "checkout.session",
			"client_reference_id": reference,
			"payment_status":      paymentStatus,
		}},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    s.Config.Stripe.WebhookSecret,
		Timestamp: time.Now(),
	})
	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload,
		map[string]string{"Stripe-Signature": signed.Header})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	status, _ := body["status"].(string)
	return w.Code, status
}

// =============================================================================
// TestCheckoutCompleted
// =============================================================================

func (s *WebhookSuite) TestCheckoutCompleted() {
	s.Run("Normal case: paid checkout confirms the booking once", func() {
		t := s.T()
		booking := s.createBooking("10:00")
		id := uuid.MustParse(booking.ID)

		code, status := s.sendEvent("evt_paid_1", "checkout.session.completed", booking.PaymentReference, "paid")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "paid", status)
		require.Equal(t, "paid", dbtest.PaymentStatusOf(t, s.DB, id))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = $1", "booking_confirmed"))

		code, status = s.sendEvent("evt_paid_1", "checkout.session.completed", booking.PaymentReference, "paid")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "duplicate", status)

		code, status = s.sendEvent("evt_paid_2", "checkout.session.completed", booking.PaymentReference, "paid")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "already_settled", status)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = $1", "booking_confirmed"))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "payment_events", ""))
	})

	s.Run("Normal case: delayed payment settles on the async event", func() {
		t := s.T()
		booking := s.createBooking("10:00")
		id := uuid.MustParse(booking.ID)

		code, status := s.sendEvent("evt_async_1", "checkout.session.completed", booking.PaymentReference, "unpaid")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "awaiting_payment", status)
		require.Equal(t, "pending", dbtest.PaymentStatusOf(t, s.DB, id))

		code, status = s.sendEvent("evt_async_2", "checkout.session.async_payment_succeeded", booking.PaymentReference, "paid")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "paid", status)
		require.Equal(t, "paid", dbtest.PaymentStatusOf(t, s.DB, id))
	})

	s.Run("Normal case: unknown reference is acknowledged", func() {
		t := s.T()
		code, status := s.sendEvent("evt_unknown", "checkout.session.completed", "apt_nobody", "paid")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "unknown_reference", status)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payment_events", "appointment_id IS NULL"))
	})
}

// =============================================================================
// TestCheckoutExpired
// =============================================================================

func (s *WebhookSuite) TestCheckoutExpired() {
	s.Run("Normal case: expired checkout releases the slot", func() {
		t := s.T()
		booking := s.createBooking("10:00")

		code, status := s.sendEvent("evt_exp_1", "checkout.session.expired", booking.PaymentReference, "unpaid")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "canceled", status)
		require.Equal(t, "canceled", dbtest.PaymentStatusOf(t, s.DB, uuid.MustParse(booking.ID)))

		s.createBooking("10:00")
	})

	s.Run("Normal case: payment after cancellation is a conflict outcome", func() {
		t := s.T()
		booking := s.createBooking("10:00")

		_, status := s.sendEvent("evt_exp_2", "checkout.session.expired", booking.PaymentReference, "unpaid")
		require.Equal(t, "canceled", status)

		code, status := s.sendEvent("evt_late_pay", "checkout.session.async_payment_succeeded", booking.PaymentReference, "paid")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "conflict", status)
		require.Equal(t, "canceled", dbtest.PaymentStatusOf(t, s.DB, uuid.MustParse(booking.ID)))
	})
}

// =============================================================================
// TestSignature
// =============================================================================

func (s *WebhookSuite) TestSignature() {
	s.Run("Error case: forged signature changes nothing", func() {
		t := s.T()
		booking := s.createBooking("10:00")

		payload := []byte(fmt.Sprintf(`{"id":"evt_forged","object":"event","type":"checkout.session.completed","api_version":%q,"data":{"object":{"client_reference_id":%q,"payment_status":"paid"}}}`,
			stripe.APIVersion, booking.PaymentReference))
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    "whsec_attacker",
			Timestamp: time.Now(),
		})

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload,
			map[string]string{"Stripe-Signature": signed.Header})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid signature")
		require.Equal(t, "pending", dbtest.PaymentStatusOf(t, s.DB, uuid.MustParse(booking.ID)))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "payment_events", ""))
	})
}
