package routes

import (
	"benefits-event-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// biometricsRoutes - biometric slot listing and admin-gated roster mutations
func biometricsRoutes(router fiber.Router, ctl *controllers.BiometricsController, adminAuth fiber.Handler) {
	biometrics := router.Group("/biometrics")
	biometrics.Get("/", ctl.GetBiometrics)
	biometrics.Post("/:sessionId/registrations", adminAuth, ctl.AddRegistration)
	biometrics.Put("/:sessionId/registrations/:registrationId", adminAuth, ctl.UpdateRegistration)
	biometrics.Delete("/:sessionId/registrations/:registrationId", adminAuth, ctl.DeleteRegistration)
}
