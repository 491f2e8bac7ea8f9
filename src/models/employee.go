package models

// Employment types recognized by the directory. An empty value means unset.
const (
	EmploymentHourly   = "Hourly"
	EmploymentSalary   = "Salary"
	EmploymentContract = "Contract"
	EmploymentPartTime = "Part-Time"
)

// Directory record statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// EmployeeRecord - a directory entry, independent of any session roster.
// EmployeeID is the external badge/payroll number, distinct from ID.
type EmployeeRecord struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName"`
	EmployeeID     string `json:"employeeId,omitempty"`
	HireDate       string `json:"hireDate,omitempty"`
	EmploymentType string `json:"employmentType,omitempty"`
	Phone          string `json:"phone"`
	Email          string `json:"email,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// EmployeesData - the whole directory, persisted as a single blob
type EmployeesData struct {
	Employees []EmployeeRecord `json:"employees"`
}

// DefaultEmployeesData returns an empty directory for first-read seeding.
func DefaultEmployeesData() EmployeesData {
	return EmployeesData{Employees: []EmployeeRecord{}}
}
