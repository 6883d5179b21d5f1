package types

import "github.com/go-playground/validator/v10"

// Recommendation pairs a course with its similarity score. Scores are only
// comparable within a single response.
type Recommendation struct {
	Course Course  `json:"course"`
	Score  float64 `json:"score"`
}

// RecommendationRequest represents the request body for POST /api/recommendations.
type RecommendationRequest struct {
	UserID      string      `json:"user_id" validate:"max=128"`
	Preferences Preferences `json:"preferences"`
	Limit       int         `json:"limit,omitempty" validate:"min=0,max=50"`
}

// Validate validates the RecommendationRequest using the validator.
// Preferences are checked in normalized form.
func (r *RecommendationRequest) Validate() error {
	normalized := *r
	normalized.Preferences = r.Preferences.Normalized()
	validate := validator.New()
	return validate.Struct(&normalized)
}

// RecommendationsResponse is the response envelope for a recommendation request.
type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	TotalCount      int              `json:"total_count"`
	Error           string           `json:"error,omitempty"`
}
