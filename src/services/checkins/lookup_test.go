package checkins

import (
	"context"
	"testing"

	"benefits-event-backend/src/database"
	"benefits-event-backend/src/models"
	"benefits-event-backend/src/services/biometrics"
	"benefits-event-backend/src/services/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesMatch(t *testing.T) {
	assert.True(t, NamesMatch("Nadir Urbina Brooks", "Nadir", "Brooks"))
	assert.True(t, NamesMatch("Brooks Nadir", "Nadir", "Brooks"))
	assert.True(t, NamesMatch("nadir brooks", "Nadir", "BROOKS"))
	assert.False(t, NamesMatch("Nadir Smith", "Nadir", "Brooks"))
	assert.False(t, NamesMatch("", "Nadir", "Brooks"))
}

func TestFindSessions(t *testing.T) {
	store := database.NewMemoryStore()
	sessionsSvc := sessions.NewService(store)
	biometricsSvc := biometrics.NewService(store)
	lookup := NewLookup(sessionsSvc, biometricsSvc)
	ctx := context.Background()

	_, err := sessionsSvc.AddEmployee(ctx, "session-1045", models.SessionEmployee{
		FullName:        "Nadir Urbina Brooks",
		Email:           "nadir@example.com",
		Phone:           "555-0100",
		PrimaryLanguage: "English",
	})
	require.NoError(t, err)

	_, err = biometricsSvc.AddRegistration(ctx, "biometric-session-1130", models.BiometricRegistration{
		FirstName:   "Nadir",
		LastName:    "Brooks",
		Phone:       "555-0100",
		Email:       "nadir@example.com",
		DateOfBirth: "01/02/1990",
	})
	require.NoError(t, err)

	result, err := lookup.FindSessions(ctx, "", "Nadir", "Brooks")
	require.NoError(t, err)
	assert.Equal(t, "10:45 AM", result.BenefitsSession)
	assert.Equal(t, "11:30 AM", result.BiometricsSession)
}

func TestFindSessionsByEmail(t *testing.T) {
	store := database.NewMemoryStore()
	sessionsSvc := sessions.NewService(store)
	biometricsSvc := biometrics.NewService(store)
	lookup := NewLookup(sessionsSvc, biometricsSvc)
	ctx := context.Background()

	_, err := sessionsSvc.AddEmployee(ctx, "session-1215", models.SessionEmployee{
		FullName:        "Maria Santos",
		Email:           "Maria.Santos@Example.com",
		Phone:           "555-0200",
		PrimaryLanguage: "Spanish",
	})
	require.NoError(t, err)

	// The registered name does not contain the queried one; the email still
	// matches case-insensitively.
	result, err := lookup.FindSessions(ctx, "maria.santos@example.com", "Mari", "Santoz")
	require.NoError(t, err)
	assert.Equal(t, "12:15 PM", result.BenefitsSession)
	assert.Empty(t, result.BiometricsSession)
}

func TestFindSessionsFirstMatchWins(t *testing.T) {
	store := database.NewMemoryStore()
	sessionsSvc := sessions.NewService(store)
	biometricsSvc := biometrics.NewService(store)
	lookup := NewLookup(sessionsSvc, biometricsSvc)
	ctx := context.Background()

	for _, sessionID := range []string{"session-1015", "session-1145"} {
		_, err := sessionsSvc.AddEmployee(ctx, sessionID, models.SessionEmployee{
			FullName:        "Liam Brook",
			Email:           "liam@example.com",
			Phone:           "555-0300",
			PrimaryLanguage: "English",
		})
		require.NoError(t, err)
	}

	result, err := lookup.FindSessions(ctx, "liam@example.com", "Liam", "Brook")
	require.NoError(t, err)
	assert.Equal(t, "10:15 AM", result.BenefitsSession)
}

func TestFindSessionsNoMatch(t *testing.T) {
	store := database.NewMemoryStore()
	lookup := NewLookup(sessions.NewService(store), biometrics.NewService(store))

	result, err := lookup.FindSessions(context.Background(), "nobody@example.com", "No", "Body")
	require.NoError(t, err)
	assert.Empty(t, result.BenefitsSession)
	assert.Empty(t, result.BiometricsSession)
}
