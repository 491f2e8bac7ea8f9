package checkins

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
	ErrCheckInNotFound = errors.New("check-in not found")
)

// ErrAlreadyCheckedIn carries the existing record so the caller can return
// it alongside the conflict.
type ErrAlreadyCheckedIn struct {
	Existing models.CheckIn
}

func (e *ErrAlreadyCheckedIn) Error() string {
	return "employee has already checked in"
}

// Service owns the check-in dataset.
type Service struct {
	store database.RecordStore
}

func NewService(store database.RecordStore) *Service {
	return &Service{store: store}
}

// CreateInput carries the fields accepted when recording an arrival.
type CreateInput struct {
	EmployeeID   string `json:"employeeId" validate:"required"`
	EmployeeName string `json:"employeeName" validate:"required"`
	FoodTickets  int    `json:"foodTickets" validate:"gte=0"`
	Notes        string `json:"notes"`
}

func (s *Service) getData(ctx context.Context) (models.CheckInsData, error) {
	var data models.CheckInsData
	found, err := s.store.Load(ctx, database.KeyCheckIns, &data)
	if err != nil {
		return models.CheckInsData{}, fmt.Errorf("read check-ins data: %w", err)
	}
	if !found {
		data = models.DefaultCheckInsData()
		if err := s.store.Save(ctx, database.KeyCheckIns, data); err != nil {
			return models.CheckInsData{}, fmt.Errorf("seed check-ins data: %w", err)
		}
	}
	return data, nil
}

func (s *Service) saveData(ctx context.Context, data models.CheckInsData) error {
	if err := s.store.Save(ctx, database.KeyCheckIns, data); err != nil {
		return fmt.Errorf("write check-ins data: %w", err)
	}
	return nil
}

// List returns all recorded arrivals.
func (s *Service) List(ctx context.Context) ([]models.CheckIn, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}
	return data.CheckIns, nil
}

// Get returns one check-in by id.
func (s *Service) Get(ctx context.Context, id string) (models.CheckIn, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return models.CheckIn{}, err
	}
	for _, checkIn := range data.CheckIns {
		if checkIn.ID == id {
			return checkIn, nil
		}
	}
	return models.CheckIn{}, ErrCheckInNotFound
}

// Create records an arrival. At most one check-in per employee is enforced
// by a scan before the insert, not by a storage constraint; a duplicate
// yields ErrAlreadyCheckedIn with the original record untouched.
func (s *Service) Create(ctx context.Context, input CreateInput) (models.CheckIn, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return models.CheckIn{}, err
	}

	for _, existing := range data.CheckIns {
		if existing.EmployeeID == input.EmployeeID {
			return models.CheckIn{}, &ErrAlreadyCheckedIn{Existing: existing}
		}
	}

	checkIn := models.CheckIn{
		ID:           "checkin-" + uuid.NewString(),
		EmployeeID:   input.EmployeeID,
		EmployeeName: input.EmployeeName,
		CheckInTime:  time.Now().UTC().Format(time.RFC3339),
		FoodTickets:  input.FoodTickets,
		Notes:        strings.TrimSpace(input.Notes),
	}

	data.CheckIns = append(data.CheckIns, checkIn)
	if err := s.saveData(ctx, data); err != nil {
		return models.CheckIn{}, err
	}
	return checkIn, nil
}

// Delete removes a check-in by id. Used for error correction only.
func (s *Service) Delete(ctx context.Context, id string) error {
	data, err := s.getData(ctx)
	if err != nil {
		return err
	}

	for i := range data.CheckIns {
		if data.CheckIns[i].ID == id {
			data.CheckIns = append(data.CheckIns[:i], data.CheckIns[i+1:]...)
			return s.saveData(ctx, data)
		}
	}

	return ErrCheckInNotFound
}
