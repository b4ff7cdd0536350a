package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const (
	maxWebhookBodyBytes = 1 << 20

	eventCheckoutCompleted      = "checkout.session.completed"
	eventCheckoutExpired        = "checkout.session.expired"
	eventAsyncPaymentSucceeded  = "checkout.session.async_payment_succeeded"
	eventAsyncPaymentFailed     = "checkout.session.async_payment_failed"
	metadataBookingReferenceKey = "booking_reference"
)

type WebhookHandler struct {
	payments  commands.PaymentCommands
	secret    string
	tolerance time.Duration
}

func NewWebhookHandler(payments commands.PaymentCommands, secret string, tolerance time.Duration) *WebhookHandler {
	return &WebhookHandler{payments: payments, secret: secret, tolerance: tolerance}
}

// @Summary Stripe webhook
// @Description Payment confirmation from Stripe; the signature is the authentication
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	if strings.TrimSpace(h.secret) == "" {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"message": "stripe webhook not configured"}})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if strings.TrimSpace(sigHeader) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "missing Stripe-Signature header"}})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "failed to read request body", nil)
		return
	}

	evt, err := webhook.ConstructEventWithTolerance(body, sigHeader, h.secret, h.tolerance)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid signature", nil)
		return
	}

	evtType := string(evt.Type)
	slog.Info("payment provider event received",
		"provider", "stripe",
		"provider_event_id", evt.ID,
		"event_type", evtType,
		"occurred_at", time.Unix(evt.Created, 0).UTC().Format(time.RFC3339))

	var handle func(*gin.Context, commands.PaymentEvent) (string, error)
	switch evtType {
	case eventCheckoutCompleted, eventAsyncPaymentSucceeded:
		handle = h.completed
	case eventCheckoutExpired, eventAsyncPaymentFailed:
		handle = h.expired
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
		slog.Error("stripe: invalid checkout session payload", "provider_event_id", evt.ID, "error", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid checkout session payload", nil)
		return
	}

	// completed fires before settlement for delayed payment methods
	if evtType == eventCheckoutCompleted && session.PaymentStatus == stripe.CheckoutSessionPaymentStatusUnpaid {
		slog.Info("stripe: checkout completed without payment, awaiting async result", "provider_event_id", evt.ID)
		c.JSON(http.StatusOK, gin.H{"status": "awaiting_payment"})
		return
	}

	outcome, err := handle(c, commands.PaymentEvent{
		EventID:   evt.ID,
		EventType: evtType,
		Reference: bookingReference(&session),
	})
	if err != nil {
		httperr.Abort(c, err, "failed to apply payment event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": outcome})
}

func (h *WebhookHandler) completed(c *gin.Context, event commands.PaymentEvent) (string, error) {
	return h.payments.HandleCheckoutCompleted(c.Request.Context(), event)
}

func (h *WebhookHandler) expired(c *gin.Context, event commands.PaymentEvent) (string, error) {
	return h.payments.HandleCheckoutExpired(c.Request.Context(), event)
}

func bookingReference(session *stripe.CheckoutSession) string {
	if ref := strings.TrimSpace(session.ClientReferenceID); ref != "" {
		return ref
	}
	return strings.TrimSpace(session.Metadata[metadataBookingReferenceKey])
}
