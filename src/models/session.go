package models

// SessionEmployee - a person registered into one benefits session roster
type SessionEmployee struct {
	ID              string `json:"id"`
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	PrimaryLanguage string `json:"primaryLanguage" validate:"required,oneof=English Spanish"`
}

// Session - one fixed benefits time slot with a capacity-limited roster
type Session struct {
	ID          string            `json:"id"`
	Time        string            `json:"time"`
	Employees   []SessionEmployee `json:"employees"`
	MaxCapacity int               `json:"maxCapacity"`
	SpanishOnly bool              `json:"spanishOnly,omitempty"`
}

// SessionsData - the whole benefits dataset, persisted as a single blob
type SessionsData struct {
	EventDate  string    `json:"eventDate"`
	EventTitle string    `json:"eventTitle"`
	Sessions   []Session `json:"sessions"`
}

// SpanishSessionCapacity is the target capacity for Spanish-only sessions,
// applied by the one-shot capacity migration.
const SpanishSessionCapacity = 15

// DefaultSessionsData returns the seed benefits schedule written on first read.
func DefaultSessionsData() SessionsData {
	return SessionsData{
		EventDate:  "November 8, 2025",
		EventTitle: "Employee Benefits",
		Sessions: []Session{
			{ID: "session-1015", Time: "10:15 AM", Employees: []SessionEmployee{}, MaxCapacity: 10},
			{ID: "session-1045", Time: "10:45 AM", Employees: []SessionEmployee{}, MaxCapacity: 10},
			{ID: "session-1115", Time: "11:15 AM", Employees: []SessionEmployee{}, MaxCapacity: 10},
			{ID: "session-1145", Time: "11:45 AM", Employees: []SessionEmployee{}, MaxCapacity: 10},
			{ID: "session-1215", Time: "12:15 PM", Employees: []SessionEmployee{}, MaxCapacity: 10},
			{ID: "session-1245", Time: "12:45 PM", Employees: []SessionEmployee{}, MaxCapacity: 15, SpanishOnly: true},
			{ID: "session-115", Time: "1:15 PM", Employees: []SessionEmployee{}, MaxCapacity: 15, SpanishOnly: true},
		},
	}
}
