package biometrics

import (
	"context"
	"testing"

	"benefits-event-backend/src/database"
	"benefits-event-backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(database.NewMemoryStore())
}

func testRegistration(first, last string) models.BiometricRegistration {
	return models.BiometricRegistration{
		FirstName:   first,
		LastName:    last,
		Phone:       "555-0100",
		Email:       "test@example.com",
		DateOfBirth: "01/15/1990",
	}
}

func TestGetDataSeedsSlots(t *testing.T) {
	svc := newTestService()

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "November 8, 2025", data.EventDate)
	assert.Equal(t, "Biometric Exams", data.EventTitle)

	// Every 15 minutes from 10:00 AM through 1:45 PM inclusive.
	require.Len(t, data.Sessions, 16)
	assert.Equal(t, "biometric-session-1000", data.Sessions[0].ID)
	assert.Equal(t, "10:00 AM", data.Sessions[0].Time)
	assert.Equal(t, "biometric-session-1200", data.Sessions[8].ID)
	assert.Equal(t, "12:00 PM", data.Sessions[8].Time)
	assert.Equal(t, "biometric-session-1345", data.Sessions[15].ID)
	assert.Equal(t, "1:45 PM", data.Sessions[15].Time)

	for _, session := range data.Sessions {
		assert.Equal(t, 6, session.MaxCapacity)
		assert.Empty(t, session.Registrations)
	}
}

func TestAddRegistrationCapacityGate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := svc.AddRegistration(ctx, "biometric-session-1000", testRegistration("Pat", "Lee"))
		require.NoError(t, err)
	}

	_, err := svc.AddRegistration(ctx, "biometric-session-1000", testRegistration("One", "TooMany"))
	assert.ErrorIs(t, err, ErrSessionFull)

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Sessions[0].Registrations, 6)
}

func TestAddRegistrationSessionNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddRegistration(context.Background(), "biometric-session-2400", testRegistration("Pat", "Lee"))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateRegistration(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.AddRegistration(ctx, "biometric-session-1015", testRegistration("Pat", "Lee"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	replacement := testRegistration("Patricia", "Lee")
	updated, err := svc.UpdateRegistration(ctx, "biometric-session-1015", created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Patricia", updated.FirstName)

	_, err = svc.UpdateRegistration(ctx, "biometric-session-1015", "reg-missing", replacement)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestRemoveRegistration(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.AddRegistration(ctx, "biometric-session-1030", testRegistration("First", "Person"))
	require.NoError(t, err)
	second, err := svc.AddRegistration(ctx, "biometric-session-1030", testRegistration("Second", "Person"))
	require.NoError(t, err)

	require.NoError(t, svc.RemoveRegistration(ctx, "biometric-session-1030", first.ID))

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Sessions[2].Registrations, 1)
	assert.Equal(t, second.ID, data.Sessions[2].Registrations[0].ID)

	err = svc.RemoveRegistration(ctx, "biometric-session-1030", first.ID)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}
