package employees

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"benefits-event-backend/src/models"

	"github.com/agnivade/levenshtein"
)

// Fuzzy search tuning. A field score of 0 is an exact match and 1 is
// unrelated; candidates qualify when their best field comes in under the
// threshold. Ranking uses the weighted sum across the three fields.
const (
	searchThreshold   = 0.4
	searchMinQueryLen = 2
	searchMaxResults  = 20

	weightFirstName = 0.4
	weightLastName  = 0.4
	weightEmail     = 0.2
)

type scoredEmployee struct {
	employee models.EmployeeRecord
	score    float64
}

// Search ranks directory entries by typo-tolerant similarity to the query
// across first name, last name, and email. Queries shorter than two
// characters return no results.
func (s *Service) Search(ctx context.Context, query string) ([]models.EmployeeRecord, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < searchMinQueryLen {
		return []models.EmployeeRecord{}, nil
	}

	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	matches := []scoredEmployee{}
	for _, employee := range data.Employees {
		first := fieldScore(query, employee.FirstName)
		last := fieldScore(query, employee.LastName)
		email := fieldScore(query, employee.Email)

		best := first
		if last < best {
			best = last
		}
		if email < best {
			best = email
		}
		if best > searchThreshold {
			continue
		}

		matches = append(matches, scoredEmployee{
			employee: employee,
			score:    weightFirstName*first + weightLastName*last + weightEmail*email,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	if len(matches) > searchMaxResults {
		matches = matches[:searchMaxResults]
	}

	results := make([]models.EmployeeRecord, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.employee)
	}
	return results, nil
}

// fieldScore is the minimum normalized edit distance between the query and
// the whole field value or any of its whitespace-separated tokens.
func fieldScore(query, value string) float64 {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 1
	}

	candidates := strings.Fields(value)
	candidates = append(candidates, value)

	best := 1.0
	queryLen := utf8.RuneCountInString(query)
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(query, candidate)
		longest := queryLen
		if n := utf8.RuneCountInString(candidate); n > longest {
			longest = n
		}
		score := float64(distance) / float64(longest)
		if score < best {
			best = score
		}
	}
	return best
}
