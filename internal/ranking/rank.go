// Package ranking turns a catalog snapshot and user preferences into an
// ordered list of course recommendations.
package ranking

import (
	"errors"
	"sort"
	"strings"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/filter"
	"github.com/jonathan/course-recommender/internal/logging"
	"github.com/jonathan/course-recommender/internal/metrics"
	"github.com/jonathan/course-recommender/internal/textindex"
	"github.com/jonathan/course-recommender/internal/types"
)

const (
	// DefaultLimit is used when a request does not set a positive limit.
	DefaultLimit = 5
	// NeutralScore is assigned to every course when scoring is unavailable.
	NeutralScore = 0.5
	// querySuffix is appended when the query carries only categorical signal.
	querySuffix = "course"
)

// ErrEmptyCatalog is returned when there are no courses to recommend.
var ErrEmptyCatalog = errors.New("catalog contains no courses")

// Scorer scores a query against catalog positions.
type Scorer interface {
	Score(query string, positions []int) ([]textindex.Scored, error)
}

// Outcome describes which degraded paths a recommendation took.
type Outcome struct {
	// Widened is set when the filters matched nothing and the full catalog was ranked.
	Widened bool
	// Degraded is set when neutral scores were used instead of similarity.
	Degraded bool
	// Query is the synthesized similarity query.
	Query string
}

// Recommend filters the snapshot by prefs, ranks the result by similarity to
// a query built from prefs and returns at most limit recommendations.
func Recommend(snap *catalog.Snapshot, prefs types.Preferences, limit int) ([]types.Recommendation, Outcome, error) {
	if snap.Len() == 0 {
		return nil, Outcome{}, ErrEmptyCatalog
	}
	var scorer Scorer
	if snap.Index != nil {
		scorer = snap.Index
	}
	return RecommendWith(snap.Courses, scorer, prefs, limit)
}

// RecommendWith is Recommend over an explicit catalog and scorer. A nil
// scorer is treated as an index that is not ready.
func RecommendWith(courses []types.Course, scorer Scorer, prefs types.Preferences, limit int) ([]types.Recommendation, Outcome, error) {
	if len(courses) == 0 {
		return nil, Outcome{}, ErrEmptyCatalog
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	prefs = prefs.Normalized()
	log := logging.With("ranking")

	var outcome Outcome
	positions := filter.Positions(courses, prefs)
	if len(positions) == 0 {
		log.Warn().
			Str("category", prefs.Category).
			Str("skill_level", prefs.SkillLevel).
			Str("course_type", prefs.CourseType).
			Str("time_availability", prefs.TimeAvailability).
			Msg("no courses match preferences, ranking full catalog")
		metrics.RecommendationFallbacks.WithLabelValues("widened").Inc()
		outcome.Widened = true
		positions = allPositions(len(courses))
	}

	outcome.Query = BuildQuery(prefs)

	scored, err := score(scorer, outcome.Query, positions)
	if err != nil {
		log.Error().Err(err).Str("query", outcome.Query).Int("candidates", len(positions)).
			Msg("scoring failed, using neutral scores")
		metrics.RecommendationFallbacks.WithLabelValues("neutral_score").Inc()
		outcome.Degraded = true
		scored = neutral(positions, limit)
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	recs := make([]types.Recommendation, len(scored))
	for i, s := range scored {
		recs[i] = types.Recommendation{Course: courses[s.Position], Score: s.Score}
	}
	return recs, outcome, nil
}

// BuildQuery joins the topical preference fields into a similarity query.
// When only the category carries signal, a generic suffix is appended.
func BuildQuery(prefs types.Preferences) string {
	var parts []string
	if types.IsSet(prefs.Category) {
		parts = append(parts, prefs.Category)
	}
	if prefs.Description != "" {
		parts = append(parts, prefs.Description)
	}
	if prefs.Description == "" {
		parts = append(parts, querySuffix)
	}
	return strings.Join(parts, " ")
}

func score(scorer Scorer, query string, positions []int) ([]textindex.Scored, error) {
	if scorer == nil {
		return nil, textindex.ErrModelNotReady
	}
	scored, err := scorer.Score(query, positions)
	if err != nil {
		return nil, err
	}
	if len(scored) != len(positions) {
		return nil, errors.New("scorer returned a result count that does not match the candidates")
	}
	return scored, nil
}

// neutral assigns NeutralScore to the first limit positions.
func neutral(positions []int, limit int) []textindex.Scored {
	if len(positions) > limit {
		positions = positions[:limit]
	}
	out := make([]textindex.Scored, len(positions))
	for i, pos := range positions {
		out[i] = textindex.Scored{Position: pos, Score: NeutralScore}
	}
	return out
}

func allPositions(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
