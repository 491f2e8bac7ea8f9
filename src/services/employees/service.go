package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"benefits-event-backend/src/database"
	"benefits-event-backend/src/models"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameRequired     = errors.New("first name and last name are required")
)

// Service owns the employee directory dataset.
type Service struct {
	store database.RecordStore
}

func NewService(store database.RecordStore) *Service {
	return &Service{store: store}
}

// CreateInput carries the fields accepted when adding a directory entry.
type CreateInput struct {
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	LastName       string `json:"lastName"`
	EmployeeID     string `json:"employeeId"`
	HireDate       string `json:"hireDate"`
	EmploymentType string `json:"employmentType"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Status         string `json:"status"`
}

// UpdateInput distinguishes absent fields (nil) from fields explicitly sent
// empty: an explicit empty collapses middleName/employeeId/hireDate/
// employmentType/email to unset, while firstName/lastName/phone keep their
// prior value when the new one is blank.
type UpdateInput struct {
	FirstName      *string `json:"firstName"`
	MiddleName     *string `json:"middleName"`
	LastName       *string `json:"lastName"`
	EmployeeID     *string `json:"employeeId"`
	HireDate       *string `json:"hireDate"`
	EmploymentType *string `json:"employmentType"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Status         *string `json:"status"`
}

func (s *Service) getData(ctx context.Context) (models.EmployeesData, error) {
	var data models.EmployeesData
	found, err := s.store.Load(ctx, database.KeyEmployees, &data)
	if err != nil {
		return models.EmployeesData{}, fmt.Errorf("read employees data: %w", err)
	}
	if !found {
		data = models.DefaultEmployeesData()
		if err := s.store.Save(ctx, database.KeyEmployees, data); err != nil {
			return models.EmployeesData{}, fmt.Errorf("seed employees data: %w", err)
		}
	}
	return data, nil
}

func (s *Service) saveData(ctx context.Context, data models.EmployeesData) error {
	if err := s.store.Save(ctx, database.KeyEmployees, data); err != nil {
		return fmt.Errorf("write employees data: %w", err)
	}
	return nil
}

// List returns all directory entries.
func (s *Service) List(ctx context.Context) ([]models.EmployeeRecord, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}
	return data.Employees, nil
}

// Get returns one directory entry by internal id.
func (s *Service) Get(ctx context.Context, id string) (models.EmployeeRecord, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return models.EmployeeRecord{}, err
	}
	for _, employee := range data.Employees {
		if employee.ID == id {
			return employee, nil
		}
	}
	return models.EmployeeRecord{}, ErrEmployeeNotFound
}

// Create adds a directory entry. First and last name are required after
// trimming; email is lowercased; status defaults to active.
func (s *Service) Create(ctx context.Context, input CreateInput) (models.EmployeeRecord, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return models.EmployeeRecord{}, ErrNameRequired
	}

	data, err := s.getData(ctx)
	if err != nil {
		return models.EmployeeRecord{}, err
	}

	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	now := time.Now().UTC().Format(time.RFC3339)
	employee := models.EmployeeRecord{
		ID:             "emp-" + uuid.NewString(),
		FirstName:      firstName,
		MiddleName:     strings.TrimSpace(input.MiddleName),
		LastName:       lastName,
		EmployeeID:     strings.TrimSpace(input.EmployeeID),
		HireDate:       strings.TrimSpace(input.HireDate),
		EmploymentType: input.EmploymentType,
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	data.Employees = append(data.Employees, employee)
	if err := s.saveData(ctx, data); err != nil {
		return models.EmployeeRecord{}, err
	}
	return employee, nil
}

// Update overwrites provided fields and refreshes updatedAt.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (models.EmployeeRecord, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return models.EmployeeRecord{}, err
	}

	for i := range data.Employees {
		if data.Employees[i].ID != id {
			continue
		}
		employee := &data.Employees[i]

		if v := trimmed(input.FirstName); v != "" {
			employee.FirstName = v
		}
		if input.MiddleName != nil {
			employee.MiddleName = trimmed(input.MiddleName)
		}
		if v := trimmed(input.LastName); v != "" {
			employee.LastName = v
		}
		if input.EmployeeID != nil {
			employee.EmployeeID = trimmed(input.EmployeeID)
		}
		if input.HireDate != nil {
			employee.HireDate = trimmed(input.HireDate)
		}
		if input.EmploymentType != nil {
			employee.EmploymentType = *input.EmploymentType
		}
		if v := trimmed(input.Phone); v != "" {
			employee.Phone = v
		}
		if input.Email != nil {
			employee.Email = strings.ToLower(trimmed(input.Email))
		}
		if input.Status != nil && *input.Status != "" {
			employee.Status = *input.Status
		}
		employee.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		if err := s.saveData(ctx, data); err != nil {
			return models.EmployeeRecord{}, err
		}
		return *employee, nil
	}

	return models.EmployeeRecord{}, ErrEmployeeNotFound
}

// Delete removes a directory entry by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	data, err := s.getData(ctx)
	if err != nil {
		return err
	}

	for i := range data.Employees {
		if data.Employees[i].ID == id {
			data.Employees = append(data.Employees[:i], data.Employees[i+1:]...)
			return s.saveData(ctx, data)
		}
	}

	return ErrEmployeeNotFound
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
