package controllers

import (
	"log"
	"net/http"

	"benefits-event-backend/src/middleware"
	"benefits-event-backend/src/services/sessions"
	"benefits-event-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminController hosts the shared-secret validation endpoint and the
// one-shot capacity migration.
type AdminController struct {
	sessions *sessions.Service
	verify   middleware.PasswordVerifier
}

func NewAdminController(sessionsSvc *sessions.Service, verify middleware.PasswordVerifier) *AdminController {
	return &AdminController{sessions: sessionsSvc, verify: verify}
}

// ValidatePassword godoc
// @Summary      Validate the shared admin secret
// @Description  Returns a validity flag with no side effects
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/validate-password [post]
func (ctl *AdminController) ValidatePassword(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Password is required",
			"valid": false,
		})
	}

	return c.JSON(fiber.Map{"valid": ctl.verify(req.Password)})
}

// MigrateCapacity godoc
// @Summary      Set every Spanish-only session's capacity to 15
// @Description  One-shot administrative migration; idempotent
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/migrate-capacity [post]
func (ctl *AdminController) MigrateCapacity(c *fiber.Ctx) error {
	updated, err := ctl.sessions.MigrateSpanishCapacity(c.Context())
	if err != nil {
		log.Println("Error migrating capacity:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to migrate capacity")
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Spanish-only sessions capacity updated to 15",
		"updatedSessions": updated,
	})
}
