package controllers

import (
	"errors"
	"log"
	"net/http"

	"benefits-event-backend/src/models"
	"benefits-event-backend/src/services/sessions"
	"benefits-event-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionController serves the benefits session dataset and its rosters.
type SessionController struct {
	svc *sessions.Service
}

func NewSessionController(svc *sessions.Service) *SessionController {
	return &SessionController{svc: svc}
}

// GetSessions godoc
// @Summary      List benefits sessions
// @Description  Returns the whole benefits dataset with every roster
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  models.SessionsData
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/sessions [get]
func (ctl *SessionController) GetSessions(c *fiber.Ctx) error {
	data, err := ctl.svc.GetData(c.Context())
	if err != nil {
		log.Println("Error reading sessions data:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch sessions")
	}
	return c.JSON(data)
}

// AddEmployee godoc
// @Summary      Register a person into a session
// @Description  Appends a registration to the session roster, gated by capacity
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId  path  string                  true  "Session ID"
// @Param        employee   body  models.SessionEmployee  true  "Registration data"
// @Success      201  {object}  models.SessionEmployee
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/sessions/{sessionId}/employees [post]
func (ctl *SessionController) AddEmployee(c *fiber.Ctx) error {
	var employee models.SessionEmployee
	if err := c.BodyParser(&employee); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(employee); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	created, err := ctl.svc.AddEmployee(c.Context(), c.Params("sessionId"), employee)
	if err != nil {
		return sessionError(c, err, "Failed to add employee")
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// UpdateEmployee godoc
// @Summary      Update a session registration
// @Description  Replaces the registration's fields, preserving its id
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId   path  string                  true  "Session ID"
// @Param        employeeId  path  string                  true  "Registration ID"
// @Param        employee    body  models.SessionEmployee  true  "Registration data"
// @Success      200  {object}  models.SessionEmployee
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/sessions/{sessionId}/employees/{employeeId} [put]
func (ctl *SessionController) UpdateEmployee(c *fiber.Ctx) error {
	var employee models.SessionEmployee
	if err := c.BodyParser(&employee); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(employee); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	updated, err := ctl.svc.UpdateEmployee(c.Context(), c.Params("sessionId"), c.Params("employeeId"), employee)
	if err != nil {
		return sessionError(c, err, "Failed to update employee")
	}
	return c.JSON(updated)
}

// DeleteEmployee godoc
// @Summary      Remove a session registration
// @Tags         sessions
// @Produce      json
// @Param        sessionId   path  string  true  "Session ID"
// @Param        employeeId  path  string  true  "Registration ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/sessions/{sessionId}/employees/{employeeId} [delete]
func (ctl *SessionController) DeleteEmployee(c *fiber.Ctx) error {
	err := ctl.svc.RemoveEmployee(c.Context(), c.Params("sessionId"), c.Params("employeeId"))
	if err != nil {
		return sessionError(c, err, "Failed to delete employee")
	}
	return c.JSON(models.SuccessResponse{Message: "Employee deleted successfully"})
}

func sessionError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, sessions.ErrSessionNotFound):
		return utils.HandleError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, sessions.ErrEmployeeNotFound):
		return utils.HandleError(c, http.StatusNotFound, "Employee not found")
	case errors.Is(err, sessions.ErrSessionFull):
		return utils.HandleError(c, http.StatusBadRequest, "Session is at full capacity")
	default:
		log.Println("Sessions store failure:", err)
		return utils.HandleError(c, http.StatusInternalServerError, fallback)
	}
}
