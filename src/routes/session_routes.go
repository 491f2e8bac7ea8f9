package routes

import (
	"benefits-event-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// sessionRoutes - benefits session listing and admin-gated roster mutations
func sessionRoutes(router fiber.Router, ctl *controllers.SessionController, adminAuth fiber.Handler) {
	sessions := router.Group("/sessions")
	sessions.Get("/", ctl.GetSessions)
	sessions.Post("/:sessionId/employees", adminAuth, ctl.AddEmployee)
	sessions.Put("/:sessionId/employees/:employeeId", adminAuth, ctl.UpdateEmployee)
	sessions.Delete("/:sessionId/employees/:employeeId", adminAuth, ctl.DeleteEmployee)
}
