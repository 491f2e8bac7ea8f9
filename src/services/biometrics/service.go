package biometrics

import (
	"context"
	"errors"
	"fmt"

	"benefits-event-backend/src/database"
	"benefits-event-backend/src/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionFull          = errors.New("session is full")
	ErrRegistrationNotFound = errors.New("registration not found")
)

// Service owns the biometric exam dataset, the structural twin of the
// benefits sessions but with its own registrant shape.
type Service struct {
	store database.RecordStore
}

func NewService(store database.RecordStore) *Service {
	return &Service{store: store}
}

// GetData returns the whole biometrics dataset, seeding the generated slot
// table on first read.
func (s *Service) GetData(ctx context.Context) (models.BiometricsData, error) {
	var data models.BiometricsData
	found, err := s.store.Load(ctx, database.KeyBiometrics, &data)
	if err != nil {
		return models.BiometricsData{}, fmt.Errorf("read biometrics data: %w", err)
	}
	if !found {
		data = models.DefaultBiometricsData()
		if err := s.store.Save(ctx, database.KeyBiometrics, data); err != nil {
			return models.BiometricsData{}, fmt.Errorf("seed biometrics data: %w", err)
		}
	}
	return data, nil
}

func (s *Service) saveData(ctx context.Context, data models.BiometricsData) error {
	if err := s.store.Save(ctx, database.KeyBiometrics, data); err != nil {
		return fmt.Errorf("write biometrics data: %w", err)
	}
	return nil
}

// AddRegistration appends a registration, gated by capacity at insert time.
func (s *Service) AddRegistration(ctx context.Context, sessionID string, registration models.BiometricRegistration) (models.BiometricRegistration, error) {
	data, err := s.GetData(ctx)
	if err != nil {
		return models.BiometricRegistration{}, err
	}

	session := findSession(&data, sessionID)
	if session == nil {
		return models.BiometricRegistration{}, ErrSessionNotFound
	}

	if len(session.Registrations) >= session.MaxCapacity {
		return models.BiometricRegistration{}, ErrSessionFull
	}

	registration.ID = "reg-" + uuid.NewString()
	session.Registrations = append(session.Registrations, registration)

	if err := s.saveData(ctx, data); err != nil {
		return models.BiometricRegistration{}, err
	}
	return registration, nil
}

// UpdateRegistration replaces a registration's fields, preserving its id.
func (s *Service) UpdateRegistration(ctx context.Context, sessionID, registrationID string, registration models.BiometricRegistration) (models.BiometricRegistration, error) {
	data, err := s.GetData(ctx)
	if err != nil {
		return models.BiometricRegistration{}, err
	}

	session := findSession(&data, sessionID)
	if session == nil {
		return models.BiometricRegistration{}, ErrSessionNotFound
	}

	for i := range session.Registrations {
		if session.Registrations[i].ID == registrationID {
			registration.ID = registrationID
			session.Registrations[i] = registration
			if err := s.saveData(ctx, data); err != nil {
				return models.BiometricRegistration{}, err
			}
			return registration, nil
		}
	}

	return models.BiometricRegistration{}, ErrRegistrationNotFound
}

// RemoveRegistration deletes a registration by id, order-preserving.
func (s *Service) RemoveRegistration(ctx context.Context, sessionID, registrationID string) error {
	data, err := s.GetData(ctx)
	if err != nil {
		return err
	}

	session := findSession(&data, sessionID)
	if session == nil {
		return ErrSessionNotFound
	}

	for i := range session.Registrations {
		if session.Registrations[i].ID == registrationID {
			session.Registrations = append(session.Registrations[:i], session.Registrations[i+1:]...)
			return s.saveData(ctx, data)
		}
	}

	return ErrRegistrationNotFound
}

func findSession(data *models.BiometricsData, sessionID string) *models.BiometricSession {
	for i := range data.Sessions {
		if data.Sessions[i].ID == sessionID {
			return &data.Sessions[i]
		}
	}
	return nil
}
