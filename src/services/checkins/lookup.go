package checkins

import (
	"context"
	"strings"

	"benefits-event-backend/src/models"
	"benefits-event-backend/src/services/biometrics"
	"benefits-event-backend/src/services/sessions"
)

// Lookup scans both session datasets for a selected employee. It is a
// heuristic join, not a foreign key; see NamesMatch for the accepted
// false-positive/negative behavior.
type Lookup struct {
	sessions   *sessions.Service
	biometrics *biometrics.Service
}

func NewLookup(sessionsSvc *sessions.Service, biometricsSvc *biometrics.Service) *Lookup {
	return &Lookup{sessions: sessionsSvc, biometrics: biometricsSvc}
}

// FindSessions returns the time of the first benefits session and the first
// biometric session whose roster matches the employee, by exact
// case-insensitive email equality or name containment.
func (l *Lookup) FindSessions(ctx context.Context, email, firstName, lastName string) (models.SessionLookupResult, error) {
	result := models.SessionLookupResult{}

	benefitsData, err := l.sessions.GetData(ctx)
	if err != nil {
		return result, err
	}
	for _, session := range benefitsData.Sessions {
		for _, registered := range session.Employees {
			if emailsMatch(registered.Email, email) || NamesMatch(registered.FullName, firstName, lastName) {
				result.BenefitsSession = session.Time
				break
			}
		}
		if result.BenefitsSession != "" {
			break
		}
	}

	biometricsData, err := l.biometrics.GetData(ctx)
	if err != nil {
		return result, err
	}
	for _, session := range biometricsData.Sessions {
		for _, registered := range session.Registrations {
			fullName := registered.FirstName + " " + registered.LastName
			if emailsMatch(registered.Email, email) || NamesMatch(fullName, firstName, lastName) {
				result.BiometricsSession = session.Time
				break
			}
		}
		if result.BiometricsSession != "" {
			break
		}
	}

	return result, nil
}

// NamesMatch reports whether a registered full name contains both the
// employee's first and last name as case-insensitive substrings. The check
// is order-independent: "Nadir Urbina Brooks" and "Brooks Nadir" both match
// first "Nadir", last "Brooks". Substring containment can produce false
// positives (a last name that is part of a longer surname) and false
// negatives (nicknames); both are accepted, so do not tighten or loosen the
// rule without changing the acceptance behavior knowingly.
func NamesMatch(registeredName, firstName, lastName string) bool {
	if registeredName == "" {
		return false
	}

	registered := strings.ToLower(strings.TrimSpace(registeredName))
	first := strings.ToLower(strings.TrimSpace(firstName))
	last := strings.ToLower(strings.TrimSpace(lastName))

	return strings.Contains(registered, first) && strings.Contains(registered, last)
}

func emailsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
