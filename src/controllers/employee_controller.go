package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"benefits-event-backend/src/models"
	"benefits-event-backend/src/qrcode"
	"benefits-event-backend/src/services/employees"
	"benefits-event-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// EmployeeController serves the employee directory.
type EmployeeController struct {
	svc *employees.Service
}

func NewEmployeeController(svc *employees.Service) *EmployeeController {
	return &EmployeeController{svc: svc}
}

// GetEmployees godoc
// @Summary      List directory entries
// @Tags         employees
// @Produce      json
// @Success      200  {array}   models.EmployeeRecord
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/employees [get]
func (ctl *EmployeeController) GetEmployees(c *fiber.Ctx) error {
	list, err := ctl.svc.List(c.Context())
	if err != nil {
		log.Println("Error reading employees data:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch employees")
	}
	return c.JSON(list)
}

// GetEmployee godoc
// @Summary      Get one directory entry
// @Tags         employees
// @Produce      json
// @Param        employeeId  path  string  true  "Employee ID"
// @Success      200  {object}  models.EmployeeRecord
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/employees/{employeeId} [get]
func (ctl *EmployeeController) GetEmployee(c *fiber.Ctx) error {
	employee, err := ctl.svc.Get(c.Context(), c.Params("employeeId"))
	if err != nil {
		return employeeError(c, err, "Failed to fetch employee")
	}
	return c.JSON(employee)
}

// CreateEmployee godoc
// @Summary      Add a directory entry
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        employee  body  employees.CreateInput  true  "Employee data"
// @Success      201  {object}  models.EmployeeRecord
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/employees [post]
func (ctl *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	var input employees.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	employee, err := ctl.svc.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, employees.ErrNameRequired) {
			return utils.HandleError(c, http.StatusBadRequest, "First name and last name are required")
		}
		return employeeError(c, err, "Failed to create employee")
	}
	return c.Status(http.StatusCreated).JSON(employee)
}

// UpdateEmployee godoc
// @Summary      Update a directory entry
// @Description  Provided fields overwrite; explicit empties unset optional fields
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string                 true  "Employee ID"
// @Param        employee    body  employees.UpdateInput  true  "Changed fields"
// @Success      200  {object}  models.EmployeeRecord
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/employees/{employeeId} [put]
func (ctl *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	var input employees.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	employee, err := ctl.svc.Update(c.Context(), c.Params("employeeId"), input)
	if err != nil {
		return employeeError(c, err, "Failed to update employee")
	}
	return c.JSON(employee)
}

// DeleteEmployee godoc
// @Summary      Delete a directory entry
// @Tags         employees
// @Produce      json
// @Param        employeeId  path  string  true  "Employee ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/employees/{employeeId} [delete]
func (ctl *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	if err := ctl.svc.Delete(c.Context(), c.Params("employeeId")); err != nil {
		return employeeError(c, err, "Failed to delete employee")
	}
	return c.JSON(models.SuccessResponse{Message: "Employee deleted successfully"})
}

// SearchEmployees godoc
// @Summary      Fuzzy-search the directory
// @Description  Typo-tolerant lookup over first name, last name, and email
// @Tags         employees
// @Produce      json
// @Param        q  query  string  true  "Search query"
// @Success      200  {array}   models.EmployeeRecord
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/employees/search [get]
func (ctl *EmployeeController) SearchEmployees(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.HandleError(c, http.StatusBadRequest, "Search query is required")
	}

	results, err := ctl.svc.Search(c.Context(), query)
	if err != nil {
		return employeeError(c, err, "Failed to search employees")
	}
	return c.JSON(results)
}

// UploadEmployees godoc
// @Summary      Bulk-import directory entries
// @Description  Accepts a CSV/XLS/XLSX file; valid rows import, row errors are reported per row
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Spreadsheet file"
// @Success      200  {object}  models.ImportResult
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/employees/upload [post]
func (ctl *EmployeeController) UploadEmployees(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "No file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Failed to read uploaded file")
	}
	defer file.Close()

	content := make([]byte, fileHeader.Size)
	if _, err := io.ReadFull(file, content); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Failed to read uploaded file")
	}

	result, err := ctl.svc.BulkImport(c.Context(), fileHeader.Filename, content)
	if err != nil {
		switch {
		case errors.Is(err, employees.ErrInvalidFileType):
			return utils.HandleError(c, http.StatusBadRequest, "Invalid file type. Please upload CSV or XLSX file.")
		case errors.Is(err, employees.ErrInsufficientRows):
			return utils.HandleError(c, http.StatusBadRequest, "File must contain header row and at least one data row")
		case errors.Is(err, employees.ErrMissingNameColumns):
			return utils.HandleError(c, http.StatusBadRequest, "File must contain columns: First Name and Last Name")
		default:
			return employeeError(c, err, "Failed to process file upload")
		}
	}
	return c.JSON(result)
}

// GetEmployeeBadge godoc
// @Summary      Badge QR code for an employee
// @Description  PNG QR encoding the employee id, for door scanning
// @Tags         employees
// @Produce      png
// @Param        employeeId  path  string  true  "Employee ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/employees/{employeeId}/qr [get]
func (ctl *EmployeeController) GetEmployeeBadge(c *fiber.Ctx) error {
	employee, err := ctl.svc.Get(c.Context(), c.Params("employeeId"))
	if err != nil {
		return employeeError(c, err, "Failed to fetch employee")
	}

	png, err := qrcode.EncodePNG(employee.ID)
	if err != nil {
		log.Println("Error encoding badge QR:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to generate badge")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func employeeError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, employees.ErrEmployeeNotFound) {
		return utils.HandleError(c, http.StatusNotFound, "Employee not found")
	}
	log.Println("Employees store failure:", err)
	return utils.HandleError(c, http.StatusInternalServerError, fallback)
}
