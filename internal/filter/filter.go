// Package filter narrows a course catalog to the entries matching a set of
// user preferences.
package filter

import (
	"strings"

	"github.com/jonathan/course-recommender/internal/types"
)

// Duration tokens matched literally against a course's duration string.
var (
	shortTermTokens = []string{"2 weeks", "3 weeks", "4 weeks", "5 weeks", "6 weeks"}
	longTermTokens  = []string{"8 weeks", "10 weeks", "12 weeks", "14 weeks", "16 weeks", "20 weeks"}
)

// Positions returns the catalog positions of courses matching every active
// constraint in prefs, in catalog order. It never substitutes data: an
// over-constrained preference set yields an empty slice.
func Positions(courses []types.Course, prefs types.Preferences) []int {
	prefs = prefs.Normalized()
	out := make([]int, 0, len(courses))
	for i := range courses {
		if Matches(&courses[i], prefs) {
			out = append(out, i)
		}
	}
	return out
}

// Apply returns the matching courses in catalog order.
func Apply(courses []types.Course, prefs types.Preferences) []types.Course {
	positions := Positions(courses, prefs)
	out := make([]types.Course, len(positions))
	for i, pos := range positions {
		out[i] = courses[pos]
	}
	return out
}

// Matches reports whether a single course satisfies prefs.
func Matches(c *types.Course, prefs types.Preferences) bool {
	if types.IsSet(prefs.Category) && c.Category != prefs.Category {
		return false
	}
	if types.IsSet(prefs.SkillLevel) && !strings.EqualFold(c.SkillLevel, prefs.SkillLevel) {
		return false
	}
	if types.IsSet(prefs.CourseType) && !strings.EqualFold(prefs.CourseType, types.CourseTypeBoth) &&
		!strings.EqualFold(c.Type, prefs.CourseType) {
		return false
	}
	return matchesDuration(c.Duration, prefs.TimeAvailability)
}

// matchesDuration applies the duration bucket. Unknown buckets do not constrain.
func matchesDuration(duration, bucket string) bool {
	var tokens []string
	switch {
	case strings.EqualFold(bucket, types.DurationShortTerm):
		tokens = shortTermTokens
	case strings.EqualFold(bucket, types.DurationLongTerm):
		tokens = longTermTokens
	default:
		return true
	}

	d := strings.ToLower(duration)
	for _, tok := range tokens {
		if strings.Contains(d, tok) {
			return true
		}
	}
	return false
}
