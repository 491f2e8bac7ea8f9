package controllers

import (
	"errors"
	"log"
	"net/http"

	"benefits-event-backend/src/models"
	"benefits-event-backend/src/services/checkins"
	"benefits-event-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CheckInController serves arrival records and the session lookup heuristic.
type CheckInController struct {
	svc    *checkins.Service
	lookup *checkins.Lookup
}

func NewCheckInController(svc *checkins.Service, lookup *checkins.Lookup) *CheckInController {
	return &CheckInController{svc: svc, lookup: lookup}
}

// GetCheckIns godoc
// @Summary      List check-ins
// @Tags         checkins
// @Produce      json
// @Success      200  {array}   models.CheckIn
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/checkins [get]
func (ctl *CheckInController) GetCheckIns(c *fiber.Ctx) error {
	list, err := ctl.svc.List(c.Context())
	if err != nil {
		log.Println("Error reading check-ins data:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch check-ins")
	}
	return c.JSON(list)
}

// GetCheckIn godoc
// @Summary      Get one check-in
// @Tags         checkins
// @Produce      json
// @Param        checkinId  path  string  true  "Check-in ID"
// @Success      200  {object}  models.CheckIn
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/checkins/{checkinId} [get]
func (ctl *CheckInController) GetCheckIn(c *fiber.Ctx) error {
	checkIn, err := ctl.svc.Get(c.Context(), c.Params("checkinId"))
	if err != nil {
		return checkInError(c, err, "Failed to fetch check-in")
	}
	return c.JSON(checkIn)
}

// CreateCheckIn godoc
// @Summary      Record an arrival
// @Description  At most one check-in per employee; a duplicate returns 409 with the existing record
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Param        checkin  body  checkins.CreateInput  true  "Check-in data"
// @Success      201  {object}  models.CheckIn
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/checkins [post]
func (ctl *CheckInController) CreateCheckIn(c *fiber.Ctx) error {
	var req struct {
		EmployeeID   string `json:"employeeId"`
		EmployeeName string `json:"employeeName"`
		FoodTickets  *int   `json:"foodTickets"`
		Notes        string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	if req.EmployeeID == "" || req.EmployeeName == "" {
		return utils.HandleError(c, http.StatusBadRequest, "Employee ID and name are required")
	}
	if req.FoodTickets == nil || *req.FoodTickets < 0 {
		return utils.HandleError(c, http.StatusBadRequest, "Food tickets must be a non-negative number")
	}

	checkIn, err := ctl.svc.Create(c.Context(), checkins.CreateInput{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		FoodTickets:  *req.FoodTickets,
		Notes:        req.Notes,
	})
	if err != nil {
		var dup *checkins.ErrAlreadyCheckedIn
		if errors.As(err, &dup) {
			return c.Status(http.StatusConflict).JSON(fiber.Map{
				"error":   "Employee has already checked in",
				"checkIn": dup.Existing,
			})
		}
		return checkInError(c, err, "Failed to create check-in")
	}
	return c.Status(http.StatusCreated).JSON(checkIn)
}

// DeleteCheckIn godoc
// @Summary      Delete a check-in
// @Description  Error-correction only; there is no other business rule
// @Tags         checkins
// @Produce      json
// @Param        checkinId  path  string  true  "Check-in ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/checkins/{checkinId} [delete]
func (ctl *CheckInController) DeleteCheckIn(c *fiber.Ctx) error {
	if err := ctl.svc.Delete(c.Context(), c.Params("checkinId")); err != nil {
		return checkInError(c, err, "Failed to delete check-in")
	}
	return c.JSON(models.SuccessResponse{Message: "Check-in deleted successfully"})
}

// LookupSessions godoc
// @Summary      Find a selected employee's scheduled sessions
// @Description  Heuristic scan of both session datasets by email equality or name containment
// @Tags         checkins
// @Produce      json
// @Param        email      query  string  false  "Employee email"
// @Param        firstName  query  string  true   "Employee first name"
// @Param        lastName   query  string  true   "Employee last name"
// @Success      200  {object}  models.SessionLookupResult
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/checkins/session-lookup [get]
func (ctl *CheckInController) LookupSessions(c *fiber.Ctx) error {
	firstName := c.Query("firstName")
	lastName := c.Query("lastName")
	if firstName == "" || lastName == "" {
		return utils.HandleError(c, http.StatusBadRequest, "First name and last name are required")
	}

	result, err := ctl.lookup.FindSessions(c.Context(), c.Query("email"), firstName, lastName)
	if err != nil {
		log.Println("Session lookup store failure:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to look up sessions")
	}
	return c.JSON(result)
}

// ExportCheckIns godoc
// @Summary      Export check-ins as a spreadsheet
// @Tags         checkins
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/checkins/export [get]
func (ctl *CheckInController) ExportCheckIns(c *fiber.Ctx) error {
	workbook, err := ctl.svc.ExportWorkbook(c.Context())
	if err != nil {
		log.Println("Error exporting check-ins:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to export check-ins")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="checkins.xlsx"`)
	return c.Send(workbook)
}

func checkInError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, checkins.ErrCheckInNotFound) {
		return utils.HandleError(c, http.StatusNotFound, "Check-in not found")
	}
	log.Println("Check-ins store failure:", err)
	return utils.HandleError(c, http.StatusInternalServerError, fallback)
}
