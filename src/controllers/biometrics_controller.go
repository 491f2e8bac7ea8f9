package controllers

import (
	"errors"
	"log"
	"net/http"

	"benefits-event-backend/src/models"
	"benefits-event-backend/src/services/biometrics"
	"benefits-event-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// BiometricsController serves the biometric exam dataset and its rosters.
type BiometricsController struct {
	svc *biometrics.Service
}

func NewBiometricsController(svc *biometrics.Service) *BiometricsController {
	return &BiometricsController{svc: svc}
}

// GetBiometrics godoc
// @Summary      List biometric exam sessions
// @Tags         biometrics
// @Produce      json
// @Success      200  {object}  models.BiometricsData
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/biometrics [get]
func (ctl *BiometricsController) GetBiometrics(c *fiber.Ctx) error {
	data, err := ctl.svc.GetData(c.Context())
	if err != nil {
		log.Println("Error reading biometrics data:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch biometrics data")
	}
	return c.JSON(data)
}

// AddRegistration godoc
// @Summary      Register a person into a biometric slot
// @Tags         biometrics
// @Accept       json
// @Produce      json
// @Param        sessionId     path  string                        true  "Session ID"
// @Param        registration  body  models.BiometricRegistration  true  "Registration data"
// @Success      201  {object}  models.BiometricRegistration
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/biometrics/{sessionId}/registrations [post]
func (ctl *BiometricsController) AddRegistration(c *fiber.Ctx) error {
	var registration models.BiometricRegistration
	if err := c.BodyParser(&registration); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(registration); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	created, err := ctl.svc.AddRegistration(c.Context(), c.Params("sessionId"), registration)
	if err != nil {
		return biometricsError(c, err, "Failed to add registration")
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// UpdateRegistration godoc
// @Summary      Update a biometric registration
// @Tags         biometrics
// @Accept       json
// @Produce      json
// @Param        sessionId       path  string                        true  "Session ID"
// @Param        registrationId  path  string                        true  "Registration ID"
// @Param        registration    body  models.BiometricRegistration  true  "Registration data"
// @Success      200  {object}  models.BiometricRegistration
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/biometrics/{sessionId}/registrations/{registrationId} [put]
func (ctl *BiometricsController) UpdateRegistration(c *fiber.Ctx) error {
	var registration models.BiometricRegistration
	if err := c.BodyParser(&registration); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(registration); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	updated, err := ctl.svc.UpdateRegistration(c.Context(), c.Params("sessionId"), c.Params("registrationId"), registration)
	if err != nil {
		return biometricsError(c, err, "Failed to update registration")
	}
	return c.JSON(updated)
}

// DeleteRegistration godoc
// @Summary      Remove a biometric registration
// @Tags         biometrics
// @Produce      json
// @Param        sessionId       path  string  true  "Session ID"
// @Param        registrationId  path  string  true  "Registration ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/biometrics/{sessionId}/registrations/{registrationId} [delete]
func (ctl *BiometricsController) DeleteRegistration(c *fiber.Ctx) error {
	err := ctl.svc.RemoveRegistration(c.Context(), c.Params("sessionId"), c.Params("registrationId"))
	if err != nil {
		return biometricsError(c, err, "Failed to delete registration")
	}
	return c.JSON(models.SuccessResponse{Message: "Registration deleted successfully"})
}

func biometricsError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, biometrics.ErrSessionNotFound):
		return utils.HandleError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, biometrics.ErrRegistrationNotFound):
		return utils.HandleError(c, http.StatusNotFound, "Registration not found")
	case errors.Is(err, biometrics.ErrSessionFull):
		return utils.HandleError(c, http.StatusBadRequest, "Session is full")
	default:
		log.Println("Biometrics store failure:", err)
		return utils.HandleError(c, http.StatusInternalServerError, fallback)
	}
}
