package db

import (
	"time"

	"github.com/jonathan/course-recommender/internal/types"
)

// StoredRecommendation represents a row of the recommendations table
type StoredRecommendation struct {
	UserID      string            `json:"user_id"`
	CourseID    string            `json:"course_id"`
	Preferences types.Preferences `json:"preferences"`
	Score       float64           `json:"score"`
	CreatedAt   time.Time         `json:"created_at"`
}
