package employees

import (
	"context"
	"testing"

	"benefits-event-backend/src/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(database.NewMemoryStore())
}

func TestCreateEmployee(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), CreateInput{
		FirstName: "  Jane ",
		LastName:  " Doe  ",
		Email:     " Jane.Doe@Example.COM ",
		Phone:     "555-0100",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, "Doe", created.LastName)
	assert.Equal(t, "jane.doe@example.com", created.Email)
	assert.Equal(t, "active", created.Status)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateEmployeeRequiresNames(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{FirstName: "Jane"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateInput{FirstName: "   ", LastName: "Doe"})
	assert.ErrorIs(t, err, ErrNameRequired)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetEmployee(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = svc.Get(ctx, "emp-missing")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func strPtr(s string) *string { return &s }

func TestUpdateEmployee(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		FirstName:  "Jane",
		MiddleName: "Q",
		LastName:   "Doe",
		Phone:      "555-0100",
		EmployeeID: "B-1001",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateInput{
		// Blank first name falls back to the prior value.
		FirstName: strPtr(""),
		// Explicit empty middle name collapses to unset.
		MiddleName: strPtr(""),
		LastName:   strPtr("Doe-Smith"),
		Email:      strPtr("JDOE@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", updated.FirstName)
	assert.Empty(t, updated.MiddleName)
	assert.Equal(t, "Doe-Smith", updated.LastName)
	assert.Equal(t, "jdoe@example.com", updated.Email)
	// Fields not provided keep their prior values.
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "B-1001", updated.EmployeeID)
	assert.NotEmpty(t, updated.UpdatedAt)

	_, err = svc.Update(ctx, "emp-missing", UpdateInput{})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
