package models

// CheckIn - a single recorded arrival event. EmployeeName is a denormalized
// snapshot taken at check-in time, not re-derived from the directory.
type CheckIn struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	CheckInTime  string `json:"checkInTime"`
	FoodTickets  int    `json:"foodTickets"`
	Notes        string `json:"notes,omitempty"`
}

// CheckInsData - the whole check-in list, persisted as a single blob
type CheckInsData struct {
	CheckIns []CheckIn `json:"checkIns"`
}

// DefaultCheckInsData returns an empty check-in list for first-read seeding.
func DefaultCheckInsData() CheckInsData {
	return CheckInsData{CheckIns: []CheckIn{}}
}

// SessionLookupResult - the session times found for an employee across the
// benefits and biometrics datasets. Empty string means not found.
type SessionLookupResult struct {
	BenefitsSession   string `json:"benefitsSession,omitempty"`
	BiometricsSession string `json:"biometricsSession,omitempty"`
}
