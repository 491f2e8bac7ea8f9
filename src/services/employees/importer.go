package employees

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"benefits-event-backend/src/models"

	"github.com/extrame/xls"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var (
	ErrInvalidFileType    = errors.New("invalid file type, please upload CSV or XLSX file")
	ErrInsufficientRows   = errors.New("file must contain header row and at least one data row")
	ErrMissingNameColumns = errors.New("file must contain columns: First Name and Last Name")
)

// columnIndexes holds the resolved header positions; -1 means the column is
// absent. Headers are matched by keyword containment, not exact wording, so
// "Legal First Name" still resolves firstName. When several columns match,
// the first one wins.
type columnIndexes struct {
	firstName      int
	middleName     int
	lastName       int
	employeeID     int
	hireDate       int
	employmentType int
	phone          int
	email          int
	status         int
}

// BulkImport parses an uploaded spreadsheet and appends the valid rows in a
// single batch write. Row-level failures (missing names, duplicate emails)
// are collected per row instead of failing the batch; structural failures
// (unreadable file, unresolvable name columns) fail the whole import.
func (s *Service) BulkImport(ctx context.Context, filename string, content []byte) (models.ImportResult, error) {
	rows, err := parseTabularFile(filename, content)
	if err != nil {
		return models.ImportResult{}, err
	}
	if len(rows) < 2 {
		return models.ImportResult{}, ErrInsufficientRows
	}

	cols := resolveColumns(rows[0])
	if cols.firstName == -1 || cols.lastName == -1 {
		return models.ImportResult{}, ErrMissingNameColumns
	}

	data, err := s.getData(ctx)
	if err != nil {
		return models.ImportResult{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	newEmployees := []models.EmployeeRecord{}
	rowErrors := []string{}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || allBlank(row) {
			continue
		}

		firstName := cellAt(row, cols.firstName)
		lastName := cellAt(row, cols.lastName)
		email := strings.ToLower(cellAt(row, cols.email))

		// Row numbers in error strings are 1-indexed including the header.
		if firstName == "" || lastName == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: Missing required fields (First Name and Last Name)", i+1))
			continue
		}

		if email != "" && emailTaken(email, data.Employees, newEmployees) {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: Duplicate email %s", i+1, email))
			continue
		}

		status := models.StatusActive
		if strings.ToLower(cellAt(row, cols.status)) == models.StatusInactive {
			status = models.StatusInactive
		}

		newEmployees = append(newEmployees, models.EmployeeRecord{
			ID:             "emp-" + uuid.NewString(),
			FirstName:      firstName,
			MiddleName:     cellAt(row, cols.middleName),
			LastName:       lastName,
			EmployeeID:     cellAt(row, cols.employeeID),
			HireDate:       normalizeHireDate(cellAt(row, cols.hireDate)),
			EmploymentType: NormalizeEmploymentType(cellAt(row, cols.employmentType)),
			Phone:          cellAt(row, cols.phone),
			Email:          email,
			Status:         status,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	data.Employees = append(data.Employees, newEmployees...)
	if err := s.saveData(ctx, data); err != nil {
		return models.ImportResult{}, err
	}

	return models.ImportResult{
		Message:  fmt.Sprintf("Successfully imported %d employees", len(newEmployees)),
		Imported: len(newEmployees),
		Errors:   rowErrors,
	}, nil
}

// NormalizeEmploymentType maps free-form input onto the fixed enumeration,
// case-insensitively. "part" anywhere in the value means Part-Time; anything
// unrecognized is left unset.
func NormalizeEmploymentType(value string) string {
	switch lower := strings.ToLower(strings.TrimSpace(value)); {
	case lower == "hourly":
		return models.EmploymentHourly
	case lower == "salary":
		return models.EmploymentSalary
	case lower == "contract":
		return models.EmploymentContract
	case strings.Contains(lower, "part"):
		return models.EmploymentPartTime
	default:
		return ""
	}
}

func parseTabularFile(filename string, content []byte) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm":
		return parseXLSX(content)
	case ".xls":
		return parseXLS(content)
	case ".csv":
		return parseCSV(content)
	default:
		return nil, ErrInvalidFileType
	}
}

func parseXLSX(content []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrInsufficientRows
	}
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	return rows, nil
}

func parseXLS(content []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, err)
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrInsufficientRows
	}
	return workbook.ReadAllCells(100000), nil
}

func parseCSV(content []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, err)
	}
	return rows, nil
}

func resolveColumns(header []string) columnIndexes {
	cols := columnIndexes{
		firstName: -1, middleName: -1, lastName: -1, employeeID: -1,
		hireDate: -1, employmentType: -1, phone: -1, email: -1, status: -1,
	}

	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case cols.firstName == -1 && strings.Contains(h, "first") && strings.Contains(h, "name"):
			cols.firstName = i
		case cols.middleName == -1 && strings.Contains(h, "middle") && strings.Contains(h, "name"):
			cols.middleName = i
		case cols.lastName == -1 && strings.Contains(h, "last") && strings.Contains(h, "name"):
			cols.lastName = i
		case cols.employeeID == -1 && strings.Contains(h, "employee") && strings.Contains(h, "id"):
			cols.employeeID = i
		case cols.hireDate == -1 && strings.Contains(h, "hire") && strings.Contains(h, "date"):
			cols.hireDate = i
		case cols.employmentType == -1 && strings.Contains(h, "employment") && strings.Contains(h, "type"):
			cols.employmentType = i
		case cols.phone == -1 && strings.Contains(h, "phone"):
			cols.phone = i
		case cols.email == -1 && strings.Contains(h, "email"):
			cols.email = i
		case cols.status == -1 && strings.Contains(h, "status"):
			cols.status = i
		}
	}
	return cols
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func allBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func emailTaken(email string, existing, queued []models.EmployeeRecord) bool {
	for _, employee := range existing {
		if employee.Email == email {
			return true
		}
	}
	for _, employee := range queued {
		if employee.Email == email {
			return true
		}
	}
	return false
}

// normalizeHireDate converts Excel serial-date cells to ISO dates. The serial
// window keeps plain years and badge numbers from being misread as dates.
func normalizeHireDate(value string) string {
	if value == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial >= 20000 && serial <= 80000 {
			if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return parsed.Format("2006-01-02")
			}
		}
	}
	return value
}
