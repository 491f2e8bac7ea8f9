package models

import "fmt"

// BiometricRegistration - a person registered into one biometric exam slot
type BiometricRegistration struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"` // MM/DD/YYYY
}

// BiometricSession - one fixed biometric exam time slot
type BiometricSession struct {
	ID            string                  `json:"id"`
	Time          string                  `json:"time"`
	Registrations []BiometricRegistration `json:"registrations"`
	MaxCapacity   int                     `json:"maxCapacity"`
}

// BiometricsData - the whole biometrics dataset, persisted as a single blob
type BiometricsData struct {
	EventDate  string             `json:"eventDate"`
	EventTitle string             `json:"eventTitle"`
	Sessions   []BiometricSession `json:"sessions"`
}

// DefaultBiometricsData returns the seed biometric schedule: slots every
// 15 minutes from 10:00 AM through 1:45 PM inclusive, capacity 6.
func DefaultBiometricsData() BiometricsData {
	sessions := []BiometricSession{}

	hour, minute := 10, 0
	for hour < 13 || (hour == 13 && minute <= 45) {
		hour12 := hour
		if hour12 > 12 {
			hour12 -= 12
		}
		period := "AM"
		if hour >= 12 {
			period = "PM"
		}

		sessions = append(sessions, BiometricSession{
			ID:            fmt.Sprintf("biometric-session-%d%02d", hour, minute),
			Time:          fmt.Sprintf("%d:%02d %s", hour12, minute, period),
			Registrations: []BiometricRegistration{},
			MaxCapacity:   6,
		})

		minute += 15
		if minute >= 60 {
			minute = 0
			hour++
		}
	}

	return BiometricsData{
		EventDate:  "November 8, 2025",
		EventTitle: "Biometric Exams",
		Sessions:   sessions,
	}
}
