package router

import (
	bookingHandler "guide-booking-service/internal/module/booking/handler"
	disputeHandler "guide-booking-service/internal/module/dispute/handler"
	referralHandler "guide-booking-service/internal/module/referral/handler"
	tripHandler "guide-booking-service/internal/module/trip/handler"
	"guide-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Booking  *bookingHandler.BookingHandler
	Dispute  *disputeHandler.DisputeHandler
	Trip     *tripHandler.TripHandler
	Referral *referralHandler.ReferralHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	Api := app.Group("/api")

	v1 := Api.Group("/v1", m.ValidateToken)
	v1.Post("/bookings", h.Booking.CreateBooking)
	v1.Get("/bookings", h.Booking.ShowBookings)
	v1.Get("/bookings/:id", h.Booking.ShowBooking)
	v1.Post("/bookings/:id/confirm", h.Booking.Confirm)
	v1.Post("/bookings/:id/decline", h.Booking.Decline)
	v1.Post("/bookings/:id/complete", h.Booking.Complete)
	v1.Post("/bookings/:id/cancel", h.Booking.Cancel)

	v1.Post("/disputes", h.Dispute.OpenDispute)
	v1.Get("/disputes/:id", h.Dispute.ShowDispute)
	v1.Post("/disputes/:id/resolve", h.Dispute.Resolve)

	v1.Put("/trips/:id/referral-settings", h.Trip.UpdateReferralSettings)
	v1.Get("/trip-dates/:id/availability", h.Trip.GetAvailability)

	v1.Get("/referral-earnings", h.Referral.ShowEarnings)

	return app

}
