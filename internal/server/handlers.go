package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/logging"
	"github.com/jonathan/course-recommender/internal/ranking"
	"github.com/jonathan/course-recommender/internal/types"
)

const (
	maxRequestBytes = 64 << 10
	reloadTimeout   = 2 * time.Minute
)

// Health statuses reported by GET /api/health.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// HealthResponse represents the response for /api/health
type HealthResponse struct {
	Status        string     `json:"status"`
	Message       string     `json:"message"`
	CatalogLoaded bool       `json:"catalog_loaded"`
	ModelReady    bool       `json:"model_ready"`
	CourseCount   int        `json:"course_count"`
	Source        string     `json:"source,omitempty"`
	LoadedAt      *time.Time `json:"loaded_at,omitempty"`
}

// CountResponse represents the response for /api/courses/count
type CountResponse struct {
	Count int `json:"count"`
}

// ReloadResponse represents the response for /api/admin/reload
type ReloadResponse struct {
	Count      int    `json:"count"`
	Source     string `json:"source"`
	ModelReady bool   `json:"model_ready"`
}

// handleRecommendations ranks the catalog against the submitted preferences.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRecommendationRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	recs, outcome, err := ranking.Recommend(s.holder.Current(), req.Preferences, limit)
	if errors.Is(err, ranking.ErrEmptyCatalog) {
		logging.Error().Err(err).Msg("no courses available")
		s.jsonResponse(w, http.StatusOK, types.RecommendationsResponse{
			Recommendations: []types.Recommendation{},
			Error:           err.Error(),
		})
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	logging.Debug().
		Str("user_id", req.UserID).
		Str("query", outcome.Query).
		Bool("widened", outcome.Widened).
		Bool("degraded", outcome.Degraded).
		Int("count", len(recs)).
		Msg("recommendations served")

	s.recorder.Record(req.UserID, req.Preferences.Normalized(), recs)

	s.jsonResponse(w, http.StatusOK, types.RecommendationsResponse{
		Recommendations: recs,
		TotalCount:      len(recs),
	})
}

func decodeRecommendationRequest(w http.ResponseWriter, r *http.Request) (*types.RecommendationRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req types.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrMalformedBody{Err: err}
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	return &req, nil
}

// handleHealth reports whether the catalog and text index are available.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	snap := s.holder.Current()

	resp := HealthResponse{
		Status:        StatusHealthy,
		Message:       "Course recommender is running",
		CatalogLoaded: snap.Len() > 0,
		ModelReady:    snap.Ready(),
		CourseCount:   snap.Len(),
	}
	if snap != nil {
		loadedAt := snap.LoadedAt
		resp.Source = snap.Source
		resp.LoadedAt = &loadedAt
	}
	if !resp.ModelReady {
		resp.Status = StatusDegraded
		resp.Message = "Text index is not ready; recommendations use neutral scores"
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCourseCount returns the size of the active catalog.
func (s *Server) handleCourseCount(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, CountResponse{Count: s.holder.Current().Len()})
}

// handleReload rebuilds the catalog snapshot from its sources.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	// The reload is shared with concurrent callers, so it must not be tied
	// to this request's lifetime.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), reloadTimeout)
	defer cancel()

	snap := s.holder.Reload(ctx)
	logging.Info().Int("count", snap.Len()).Str("source", snap.Source).Bool("model_ready", snap.Ready()).
		Msg("catalog reloaded")

	s.jsonResponse(w, http.StatusOK, snapshotSummary(snap))
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error().Err(err).Msg("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

func snapshotSummary(snap *catalog.Snapshot) ReloadResponse {
	return ReloadResponse{Count: snap.Len(), Source: snap.Source, ModelReady: snap.Ready()}
}
