package routers

import (
	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, mw *middlewares.Middlewares, directoryController *controllers.DirectoryController) {
	router.Get("/", directoryController.GetPatients)
	router.With(mw.RequireAPIKey).Delete("/", directoryController.DeletePatient)
}

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, directoryController *controllers.DirectoryController) {
	router.Get("/", directoryController.GetDoctors)
	router.With(mw.RequireAPIKey).Delete("/", directoryController.DeleteDoctor)
}
