package sessions

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

func testEmployee(name string) models.SessionEmployee {
	return models.SessionEmployee{
		FullName:        name,
		Email:           "test@example.com",
		Phone:           "555-0100",
		PrimaryLanguage: "English",
	}
}

func TestGetDataSeedsDefaults(t *testing.T) {
	svc := newTestService()

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "November 8, 2025", data.EventDate)
	assert.Equal(t, "Employee Benefits", data.EventTitle)
	require.Len(t, data.Sessions, 7)

	assert.Equal(t, "session-1015", data.Sessions[0].ID)
	assert.Equal(t, "10:15 AM", data.Sessions[0].Time)
	assert.Equal(t, 10, data.Sessions[0].MaxCapacity)
	assert.False(t, data.Sessions[0].SpanishOnly)

	assert.Equal(t, "session-115", data.Sessions[6].ID)
	assert.Equal(t, "1:15 PM", data.Sessions[6].Time)
	assert.Equal(t, 15, data.Sessions[6].MaxCapacity)
	assert.True(t, data.Sessions[5].SpanishOnly)
	assert.True(t, data.Sessions[6].SpanishOnly)

	// Seeding persists, so a second read returns the same dataset.
	again, err := svc.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestAddEmployee(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, "session-1015", testEmployee("Jane Doe"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane Doe", created.FullName)

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Sessions[0].Employees, 1)
	assert.Equal(t, created.ID, data.Sessions[0].Employees[0].ID)
}

func TestAddEmployeeSessionNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddEmployee(context.Background(), "session-9999", testEmployee("Jane Doe"))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAddEmployeeCapacityGate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Fill the first Spanish-only session to its capacity of 15.
	for i := 0; i < 15; i++ {
		_, err := svc.AddEmployee(ctx, "session-1245", testEmployee("Registrant"))
		require.NoError(t, err)
	}

	_, err := svc.AddEmployee(ctx, "session-1245", testEmployee("One Too Many"))
	assert.ErrorIs(t, err, ErrSessionFull)

	// The failed add leaves the roster unchanged.
	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Sessions[5].Employees, 15)
}

func TestRosterNeverExceedsCapacity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		_, err := svc.AddEmployee(ctx, "session-1045", testEmployee("Registrant"))
		data, dataErr := svc.GetData(ctx)
		require.NoError(t, dataErr)
		assert.LessOrEqual(t, len(data.Sessions[1].Employees), data.Sessions[1].MaxCapacity)
		if i < 10 {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, ErrSessionFull)
		}
	}
}

func TestUpdateEmployee(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, "session-1015", testEmployee("Jane Doe"))
	require.NoError(t, err)

	replacement := testEmployee("Jane Q. Doe")
	replacement.PrimaryLanguage = "Spanish"
	updated, err := svc.UpdateEmployee(ctx, "session-1015", created.ID, replacement)
	require.NoError(t, err)

	// The id survives the replacement.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jane Q. Doe", updated.FullName)
	assert.Equal(t, "Spanish", updated.PrimaryLanguage)

	_, err = svc.UpdateEmployee(ctx, "session-1015", "emp-missing", replacement)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = svc.UpdateEmployee(ctx, "session-9999", created.ID, replacement)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRemoveEmployee(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.AddEmployee(ctx, "session-1015", testEmployee("First"))
	require.NoError(t, err)
	second, err := svc.AddEmployee(ctx, "session-1015", testEmployee("Second"))
	require.NoError(t, err)
	third, err := svc.AddEmployee(ctx, "session-1015", testEmployee("Third"))
	require.NoError(t, err)

	require.NoError(t, svc.RemoveEmployee(ctx, "session-1015", second.ID))

	// Remaining registrations keep their insertion order.
	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Sessions[0].Employees, 2)
	assert.Equal(t, first.ID, data.Sessions[0].Employees[0].ID)
	assert.Equal(t, third.ID, data.Sessions[0].Employees[1].ID)

	// Removing again is NotFound, not success, and changes nothing.
	err = svc.RemoveEmployee(ctx, "session-1015", second.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	data, err = svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Sessions[0].Employees, 2)
}

func TestMigrateSpanishCapacity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Knock the Spanish-only sessions off the target value first.
	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	data.Sessions[5].MaxCapacity = 10
	data.Sessions[6].MaxCapacity = 12
	require.NoError(t, svc.saveData(ctx, data))

	updated, err := svc.MigrateSpanishCapacity(ctx)
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, "session-1245", updated[0].ID)
	assert.Equal(t, 15, updated[0].MaxCapacity)
	assert.Equal(t, 15, updated[1].MaxCapacity)

	data, err = svc.GetData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, data.Sessions[5].MaxCapacity)
	assert.Equal(t, 15, data.Sessions[6].MaxCapacity)
	// Regular sessions are untouched.
	assert.Equal(t, 10, data.Sessions[0].MaxCapacity)

	// Reapplying yields the same end state.
	again, err := svc.MigrateSpanishCapacity(ctx)
	require.NoError(t, err)
	require.Len(t, again, 2)
	assert.Equal(t, updated, again)
}
