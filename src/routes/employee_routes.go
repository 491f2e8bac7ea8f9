package routes

import (
	"benefits-event-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// employeeRoutes - directory CRUD, fuzzy search, bulk upload, badge QR.
// Static paths register before the :employeeId wildcards.
func employeeRoutes(router fiber.Router, ctl *controllers.EmployeeController) {
	employees := router.Group("/employees")
	employees.Get("/", ctl.GetEmployees)
	employees.Get("/search", ctl.SearchEmployees)
	employees.Post("/", ctl.CreateEmployee)
	employees.Post("/upload", ctl.UploadEmployees)
	employees.Get("/:employeeId/qr", ctl.GetEmployeeBadge)
	employees.Get("/:employeeId", ctl.GetEmployee)
	employees.Put("/:employeeId", ctl.UpdateEmployee)
	employees.Delete("/:employeeId", ctl.DeleteEmployee)
}
