package sessions

import (
	"context"
	"errors"
	"fmt"

	"benefits-event-backend/src/database"
	"benefits-event-backend/src/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionFull      = errors.New("session is at full capacity")
	ErrEmployeeNotFound = errors.New("employee not found")
)

// Service owns the benefits session dataset. Every operation is a full
// read-modify-write of the blob under database.KeySessions.
type Service struct {
	store database.RecordStore
}

func NewService(store database.RecordStore) *Service {
	return &Service{store: store}
}

// GetData returns the whole benefits dataset, seeding the default schedule
// on first read.
func (s *Service) GetData(ctx context.Context) (models.SessionsData, error) {
	var data models.SessionsData
	found, err := s.store.Load(ctx, database.KeySessions, &data)
	if err != nil {
		return models.SessionsData{}, fmt.Errorf("read sessions data: %w", err)
	}
	if !found {
		data = models.DefaultSessionsData()
		if err := s.store.Save(ctx, database.KeySessions, data); err != nil {
			return models.SessionsData{}, fmt.Errorf("seed sessions data: %w", err)
		}
	}
	return data, nil
}

func (s *Service) saveData(ctx context.Context, data models.SessionsData) error {
	if err := s.store.Save(ctx, database.KeySessions, data); err != nil {
		return fmt.Errorf("write sessions data: %w", err)
	}
	return nil
}

// AddEmployee appends a registration to a session roster. The capacity gate
// is checked at the moment of insertion only; it is never re-validated on
// reads or updates.
func (s *Service) AddEmployee(ctx context.Context, sessionID string, employee models.SessionEmployee) (models.SessionEmployee, error) {
	data, err := s.GetData(ctx)
	if err != nil {
		return models.SessionEmployee{}, err
	}

	session := findSession(&data, sessionID)
	if session == nil {
		return models.SessionEmployee{}, ErrSessionNotFound
	}

	if len(session.Employees) >= session.MaxCapacity {
		return models.SessionEmployee{}, ErrSessionFull
	}

	employee.ID = "emp-" + uuid.NewString()
	session.Employees = append(session.Employees, employee)

	if err := s.saveData(ctx, data); err != nil {
		return models.SessionEmployee{}, err
	}
	return employee, nil
}

// UpdateEmployee replaces a registration's fields, preserving its id.
// Capacity is an insert-time gate only, so it is not re-checked here.
func (s *Service) UpdateEmployee(ctx context.Context, sessionID, employeeID string, employee models.SessionEmployee) (models.SessionEmployee, error) {
	data, err := s.GetData(ctx)
	if err != nil {
		return models.SessionEmployee{}, err
	}

	session := findSession(&data, sessionID)
	if session == nil {
		return models.SessionEmployee{}, ErrSessionNotFound
	}

	for i := range session.Employees {
		if session.Employees[i].ID == employeeID {
			employee.ID = employeeID
			session.Employees[i] = employee
			if err := s.saveData(ctx, data); err != nil {
				return models.SessionEmployee{}, err
			}
			return employee, nil
		}
	}

	return models.SessionEmployee{}, ErrEmployeeNotFound
}

// RemoveEmployee deletes a registration by id, preserving the order of the
// remaining roster. A repeat call for the same id yields ErrEmployeeNotFound,
// not success.
func (s *Service) RemoveEmployee(ctx context.Context, sessionID, employeeID string) error {
	data, err := s.GetData(ctx)
	if err != nil {
		return err
	}

	session := findSession(&data, sessionID)
	if session == nil {
		return ErrSessionNotFound
	}

	for i := range session.Employees {
		if session.Employees[i].ID == employeeID {
			session.Employees = append(session.Employees[:i], session.Employees[i+1:]...)
			return s.saveData(ctx, data)
		}
	}

	return ErrEmployeeNotFound
}

// MigrateSpanishCapacity sets every Spanish-only session's capacity to the
// fixed target. Reapplying yields the same end state.
func (s *Service) MigrateSpanishCapacity(ctx context.Context) ([]models.MigratedSession, error) {
	data, err := s.GetData(ctx)
	if err != nil {
		return nil, err
	}

	updated := []models.MigratedSession{}
	for i := range data.Sessions {
		if !data.Sessions[i].SpanishOnly {
			continue
		}
		data.Sessions[i].MaxCapacity = models.SpanishSessionCapacity
		updated = append(updated, models.MigratedSession{
			ID:                   data.Sessions[i].ID,
			Time:                 data.Sessions[i].Time,
			MaxCapacity:          data.Sessions[i].MaxCapacity,
			CurrentRegistrations: len(data.Sessions[i].Employees),
		})
	}

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}
	return updated, nil
}

func findSession(data *models.SessionsData, sessionID string) *models.Session {
	for i := range data.Sessions {
		if data.Sessions[i].ID == sessionID {
			return &data.Sessions[i]
		}
	}
	return nil
}
