package query

import (
	"strings"
	"time"

	"promohub/internal/talent/models"
)

// searchFields lists the talent attributes the free-text search covers.
func searchFields(t *models.Talent) [5]string {
	return [5]string{t.FirstName, t.LastName, t.UniqueID, t.Nationality, t.Area}
}

// MatchesSearch reports whether any searchable field contains text as a
// case-insensitive substring. Empty search text matches everything.
func MatchesSearch(t *models.Talent, text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	for _, field := range searchFields(t) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Apply composes the search predicate with every active filter dimension
// (logical AND) and returns the matching talents in their original order.
// It is a pure function over its inputs plus the supplied clock; it never
// errors, sorts, or mutates.
func Apply(talents []models.Talent, search string, filters Filters, now time.Time) []models.Talent {
	out := make([]models.Talent, 0, len(talents))
	for i := range talents {
		t := &talents[i]
		if !MatchesSearch(t, search) {
			continue
		}
		if !matchesAll(t, filters, now) {
			continue
		}
		out = append(out, talents[i])
	}
	return out
}

func matchesAll(t *models.Talent, filters Filters, now time.Time) bool {
	for dim, value := range filters {
		if !Matches(t, dim, value, now) {
			return false
		}
	}
	return true
}
