package routes

import (
	"benefits-event-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes - shared-secret validation and the capacity migration
func adminRoutes(router fiber.Router, ctl *controllers.AdminController, adminAuth fiber.Handler) {
	router.Post("/validate-password", ctl.ValidatePassword)
	router.Post("/migrate-capacity", adminAuth, ctl.MigrateCapacity)
}
