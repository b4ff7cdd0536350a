package components

import (
	"consult-booking/internal/handler"
	"consult-booking/internal/handler/api"
	"consult-booking/internal/handler/middleware"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/pkg/jwt"
	"consult-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewTestimonialHandler,
		api.NewAdminHandler,
		func(payments commands.PaymentCommands, cfg config.Config) *api.WebhookHandler {
			return api.NewWebhookHandler(payments, cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance)
		},
		func(svc *jwt.Service, cfg config.Config) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(svc, cfg.JWT.AdminRole)
		},
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Catalog:      p.Catalog,
				Availability: p.Availability,
				Booking:      p.Booking,
				Webhook:      p.Webhook,
				Testimonial:  p.Testimonial,
				Admin:        p.Admin,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Catalog      *api.CatalogHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Webhook      *api.WebhookHandler
	Testimonial  *api.TestimonialHandler
	Admin        *api.AdminHandler
}
