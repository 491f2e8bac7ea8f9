package routes

import (
	"benefits-event-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// checkInRoutes - arrival records, session lookup, spreadsheet export.
// Static paths register before the :checkinId wildcards.
func checkInRoutes(router fiber.Router, ctl *controllers.CheckInController) {
	checkins := router.Group("/checkins")
	checkins.Get("/", ctl.GetCheckIns)
	checkins.Get("/session-lookup", ctl.LookupSessions)
	checkins.Get("/export", ctl.ExportCheckIns)
	checkins.Post("/", ctl.CreateCheckIn)
	checkins.Get("/:checkinId", ctl.GetCheckIn)
	checkins.Delete("/:checkinId", ctl.DeleteCheckIn)
}
