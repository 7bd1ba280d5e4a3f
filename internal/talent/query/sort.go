package query

import (
	"slices"
	"strings"

	"promohub/internal/talent/models"
)

// SortField names the sortable listing columns. SortUniqueID corresponds to
// the "id" column header, which displays the generated unique id.
type SortField string

const (
	SortFirstName   SortField = "firstName"
	SortLastName    SortField = "lastName"
	SortTalentType  SortField = "talentType"
	SortNationality SortField = "nationality"
	SortArea        SortField = "area"
	SortExperience  SortField = "experience"
	SortStatus      SortField = "status"
	SortUniqueID    SortField = "id"
)

// Direction of a sort. Toggling on re-selecting a column is the caller's
// concern; this layer only honors the explicit direction it is given.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Page is one slice of a sorted result set.
type Page struct {
	Items      []models.Talent `json:"pageItems"`
	TotalPages int             `json:"totalPages"`
	Total      int             `json:"total"`
}

// SortAndPage stably sorts talents by the given field and direction, then
// returns the 1-indexed page of the given size. Unknown fields fall back to
// the default lastName ascending. Out-of-range pages yield an empty Items
// slice rather than an error; callers clamp at the UI layer if they want to.
func SortAndPage(talents []models.Talent, field SortField, dir Direction, page, pageSize int) Page {
	sorted := make([]models.Talent, len(talents))
	copy(sorted, talents)

	cmp := comparator(field)
	slices.SortStableFunc(sorted, func(a, b models.Talent) int {
		c := cmp(&a, &b)
		if dir == Desc {
			return -c
		}
		return c
	})

	total := len(sorted)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	if page < 1 || pageSize <= 0 || start >= total {
		return Page{Items: []models.Talent{}, TotalPages: totalPages, Total: total}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{Items: sorted[start:end], TotalPages: totalPages, Total: total}
}

// comparator returns the key comparison for a field. String keys compare
// case-insensitively with missing values sorting as empty strings; the
// experience key compares numerically with missing values treated as zero.
func comparator(field SortField) func(a, b *models.Talent) int {
	switch field {
	case SortFirstName:
		return stringCmp(func(t *models.Talent) string { return t.FirstName })
	case SortTalentType:
		return stringCmp(func(t *models.Talent) string { return string(t.TalentType) })
	case SortNationality:
		return stringCmp(func(t *models.Talent) string { return t.Nationality })
	case SortArea:
		return stringCmp(func(t *models.Talent) string { return t.Area })
	case SortStatus:
		return stringCmp(func(t *models.Talent) string { return string(t.Status) })
	case SortUniqueID:
		return stringCmp(func(t *models.Talent) string { return t.UniqueID })
	case SortExperience:
		return func(a, b *models.Talent) int {
			return a.YearsExperience - b.YearsExperience
		}
	default: // SortLastName and anything unrecognized
		return stringCmp(func(t *models.Talent) string { return t.LastName })
	}
}

func stringCmp(key func(*models.Talent) string) func(a, b *models.Talent) int {
	return func(a, b *models.Talent) int {
		return strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b)))
	}
}
