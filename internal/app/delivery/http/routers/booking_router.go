package routers

import (
	"citamed-service/internal/app/config"
	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, internalConfig *config.InternalConfig, mw *middlewares.Middlewares, bookingController *controllers.BookingController) {
	// Payment retries get their own, much tighter limiter.
	paymentLimiter := middlewares.NewRateLimiter(
		internalConfig.Booking.PaymentMaxRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.Booking.PaymentBlockTimeInMinutes)*time.Minute,
	)

	router.Post("/", bookingController.CreateBooking)
	router.With(mw.BookingSession).Get("/me", bookingController.GetBooking)
	router.With(mw.BookingSession).Patch("/me", bookingController.UpdateBooking)
	router.With(mw.BookingSession).Post("/me/submit", bookingController.SubmitBooking)
	router.With(mw.BookingSession, paymentLimiter.Limit).Post("/me/payment", bookingController.PayBooking)
	router.With(mw.BookingSession).Get("/me/transactions", bookingController.GetTransactions)
}
