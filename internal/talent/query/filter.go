package query

import (
	"strconv"
	"strings"
	"time"

	"promohub/internal/talent/models"
)

// Filter dimension names accepted by the listing API. Unknown keys in a
// Filters map are ignored entirely; known keys with malformed values match
// nothing. The asymmetry is deliberate and covered by tests.
const (
	DimNationality = "nationality"
	DimArea        = "area"
	DimStatus      = "status"
	DimGender      = "gender"
	DimExperience  = "experience"
	DimHeight      = "height"
	DimAgeRange    = "ageRange"
)

// Dimensions lists every known filter dimension, in listing column order.
var Dimensions = []string{
	DimNationality, DimArea, DimStatus, DimGender,
	DimExperience, DimHeight, DimAgeRange,
}

// All is the filter value that means "no constraint" for any dimension.
const All = "all"

// Filters maps dimension name to its raw filter value as received from the
// client, e.g. {"nationality": "ae", "height": "171-180", "ageRange": "41+"}.
type Filters map[string]string

// span is a parsed numeric range. Open spans ("41+") have no upper bound.
// Parsing once at the composition boundary keeps the predicates purely
// numeric.
type span struct {
	min  int
	max  int
	open bool
}

func (s span) contains(n int) bool {
	if n < s.min {
		return false
	}
	return s.open || n <= s.max
}

// parseSpan understands "min-max" (inclusive both ends) and "min+"
// (inclusive lower bound, unbounded). Anything else is malformed.
func parseSpan(v string) (span, bool) {
	if rest, ok := strings.CutSuffix(v, "+"); ok {
		min, err := strconv.Atoi(rest)
		if err != nil {
			return span{}, false
		}
		return span{min: min, open: true}, true
	}
	lo, hi, ok := strings.Cut(v, "-")
	if !ok {
		return span{}, false
	}
	min, err := strconv.Atoi(lo)
	if err != nil {
		return span{}, false
	}
	max, err := strconv.Atoi(hi)
	if err != nil {
		return span{}, false
	}
	return span{min: min, max: max}, true
}

// Matches decides whether one talent satisfies one filter dimension. The
// value "all" (or empty) always matches. Unknown dimensions match everything;
// malformed values for known dimensions match nothing.
func Matches(t *models.Talent, dim, value string, now time.Time) bool {
	if value == "" || value == All {
		return true
	}
	switch dim {
	case DimNationality:
		return t.Nationality == value
	case DimArea:
		return t.Area == value
	case DimStatus:
		return string(t.Status) == value
	case DimGender:
		return string(t.Gender) == value
	case DimExperience:
		min, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return t.YearsExperience >= min
	case DimHeight:
		s, ok := parseSpan(value)
		if !ok {
			return false
		}
		return s.contains(t.Height)
	case DimAgeRange:
		s, ok := parseSpan(value)
		if !ok {
			return false
		}
		age, ok := t.Age(now)
		if !ok {
			return false
		}
		return s.contains(age)
	default:
		// Unknown dimension keys are a no-op rather than an empty result.
		return true
	}
}
