package routers

import (
	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, mw *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	router.Get("/", scheduleController.GetDoctorSchedule)
	router.Get("/slots", scheduleController.GetAvailableSlots)
	router.With(mw.RequireAPIKey).Post("/", scheduleController.RegisterSchedule)
}
