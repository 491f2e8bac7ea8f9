package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"benefits-event-backend/src/database"
	"benefits-event-backend/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, store database.RecordStore) *fiber.App {
	t.Helper()
	app := fiber.New()
	InitRoutes(app, store, func(secret string) bool { return secret == "letmein" })
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegistrationFillsSingleSeatSession(t *testing.T) {
	store := database.NewMemoryStore()
	seed := models.SessionsData{
		EventDate:  "November 8, 2025",
		EventTitle: "Employee Benefits",
		Sessions: []models.Session{
			{ID: "session-900", Time: "9:00 AM", Employees: []models.SessionEmployee{}, MaxCapacity: 1},
		},
	}
	require.NoError(t, store.Save(context.Background(), database.KeySessions, seed))

	app := newTestApp(t, store)
	admin := map[string]string{"x-admin-password": "letmein"}

	employee := models.SessionEmployee{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-0100",
		PrimaryLanguage: "English",
	}

	resp := postJSON(t, app, "/api/sessions/session-900/employees", employee, admin)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.SessionEmployee
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane Doe", created.FullName)

	// The seat is taken; the next registration bounces off the capacity gate.
	second := employee
	second.FullName = "John Roe"
	second.Email = "john@example.com"
	resp = postJSON(t, app, "/api/sessions/session-900/employees", second, admin)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var failure models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&failure))
	assert.Equal(t, "Session is at full capacity", failure.Message)

	req, err := http.NewRequest(http.MethodGet, "/api/sessions", nil)
	require.NoError(t, err)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data models.SessionsData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
	require.Len(t, data.Sessions, 1)
	require.Len(t, data.Sessions[0].Employees, 1)
	assert.Equal(t, created.ID, data.Sessions[0].Employees[0].ID)
}

func TestMutatingRoutesRequireAdminSecret(t *testing.T) {
	app := newTestApp(t, database.NewMemoryStore())

	employee := models.SessionEmployee{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-0100",
		PrimaryLanguage: "English",
	}

	resp := postJSON(t, app, "/api/sessions/session-1015/employees", employee, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var failure models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&failure))
	assert.Equal(t, "Invalid or missing password", failure.Message)
}

func TestValidatePasswordRoute(t *testing.T) {
	app := newTestApp(t, database.NewMemoryStore())

	resp := postJSON(t, app, "/api/validate-password", map[string]string{"password": "letmein"}, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["valid"])

	resp = postJSON(t, app, "/api/validate-password", map[string]string{"password": "wrong"}, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["valid"])
}
