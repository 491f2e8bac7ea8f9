package models

// ErrorResponse - standard error payload
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// SuccessResponse - standard success payload used by Swagger
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ImportResult - outcome of a bulk employee upload. Errors is omitted when
// every row imported cleanly.
type ImportResult struct {
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// MigratedSession - one updated session reported by the capacity migration
type MigratedSession struct {
	ID                   string `json:"id"`
	Time                 string `json:"time"`
	MaxCapacity          int    `json:"maxCapacity"`
	CurrentRegistrations int    `json:"currentRegistrations"`
}
