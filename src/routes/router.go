package routes

import (
	"benefits-event-backend/src/controllers"
	"benefits-event-backend/src/database"
	"benefits-event-backend/src/middleware"
	"benefits-event-backend/src/services/biometrics"
	"benefits-event-backend/src/services/checkins"
	"benefits-event-backend/src/services/employees"
	"benefits-event-backend/src/services/sessions"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes wires every route group onto the app. All services share the
// one record store; mutating roster routes share the one admin gate.
func InitRoutes(app *fiber.App, store database.RecordStore, verify middleware.PasswordVerifier) {
	sessionsSvc := sessions.NewService(store)
	biometricsSvc := biometrics.NewService(store)
	employeesSvc := employees.NewService(store)
	checkInsSvc := checkins.NewService(store)
	lookup := checkins.NewLookup(sessionsSvc, biometricsSvc)

	adminAuth := middleware.AdminAuth(verify)
	api := app.Group("/api")

	sessionRoutes(api, controllers.NewSessionController(sessionsSvc), adminAuth)
	biometricsRoutes(api, controllers.NewBiometricsController(biometricsSvc), adminAuth)
	employeeRoutes(api, controllers.NewEmployeeController(employeesSvc))
	checkInRoutes(api, controllers.NewCheckInController(checkInsSvc, lookup))
	adminRoutes(api, controllers.NewAdminController(sessionsSvc, verify), adminAuth)

	// Health route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
}
