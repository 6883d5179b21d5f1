package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel values that mean "no constraint" for a preference field.
const (
	PreferenceAny  = "Any"
	CourseTypeBoth = "Both"
)

// Duration buckets accepted in Preferences.TimeAvailability.
const (
	DurationShortTerm = "Short Term"
	DurationLongTerm  = "Long Term"
)

// Skill levels and course types used by the built-in datasets.
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillAdvanced     = "Advanced"

	CourseTypeFree = "Free"
	CourseTypePaid = "Paid"
)

// Preferences holds the optional constraints supplied with a recommendation
// request. An empty string or PreferenceAny leaves a field unconstrained;
// CourseTypeBoth also leaves CourseType unconstrained.
type Preferences struct {
	Category         string `json:"category,omitempty" validate:"max=256"`
	SkillLevel       string `json:"skill_level,omitempty" validate:"max=256"`
	CourseType       string `json:"course_type,omitempty" validate:"max=256"`
	TimeAvailability string `json:"time_availability,omitempty" validate:"omitempty,oneof=Any 'Short Term' 'Long Term'"`
	Description      string `json:"description,omitempty" validate:"max=2048"`
}

// Validate validates the normalized Preferences using the validator, so
// values the filter accepts are never rejected here.
func (p *Preferences) Validate() error {
	normalized := p.Normalized()
	validate := validator.New()
	return validate.Struct(&normalized)
}

// Normalized returns a copy with surrounding whitespace trimmed from every
// field and the duration bucket spelled canonically.
func (p Preferences) Normalized() Preferences {
	return Preferences{
		Category:         strings.TrimSpace(p.Category),
		SkillLevel:       strings.TrimSpace(p.SkillLevel),
		CourseType:       strings.TrimSpace(p.CourseType),
		TimeAvailability: canonicalBucket(strings.TrimSpace(p.TimeAvailability)),
		Description:      strings.TrimSpace(p.Description),
	}
}

func canonicalBucket(bucket string) string {
	for _, known := range []string{PreferenceAny, DurationShortTerm, DurationLongTerm} {
		if strings.EqualFold(bucket, known) {
			return known
		}
	}
	return bucket
}

// IsSet reports whether a preference value constrains results.
func IsSet(value string) bool {
	return value != "" && value != PreferenceAny
}
