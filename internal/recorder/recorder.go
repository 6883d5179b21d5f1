// Package recorder persists served recommendations in the background.
// Persistence is best effort: failures are logged and counted, never
// returned to the request path.
package recorder

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/course-recommender/internal/logging"
	"github.com/jonathan/course-recommender/internal/metrics"
	"github.com/jonathan/course-recommender/internal/types"
)

// DefaultTimeout bounds a single background write.
const DefaultTimeout = 5 * time.Second

// Store writes a user's recommendations, replacing earlier ones.
type Store interface {
	ReplaceRecommendations(ctx context.Context, userID string, prefs types.Preferences, recs []types.Recommendation) error
}

// Recorder dispatches writes to a Store without blocking the caller.
type Recorder struct {
	store   Store
	timeout time.Duration
	wg      sync.WaitGroup
}

// New creates a Recorder. A nil store yields a Recorder that drops every record.
func New(store Store, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Recorder{store: store, timeout: timeout}
}

// Enabled reports whether records are persisted.
func (r *Recorder) Enabled() bool {
	return r != nil && r.store != nil
}

// Record persists recs for userID in the background. Empty user IDs and
// empty result sets are skipped.
func (r *Recorder) Record(userID string, prefs types.Preferences, recs []types.Recommendation) {
	if !r.Enabled() || userID == "" || len(recs) == 0 {
		return
	}

	owned := make([]types.Recommendation, len(recs))
	copy(owned, recs)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		log := logging.With("recorder")
		if err := r.store.ReplaceRecommendations(ctx, userID, prefs, owned); err != nil {
			metrics.PersistenceErrors.Inc()
			log.Error().Err(err).Str("user_id", userID).Msg("failed to save recommendations")
			return
		}
		log.Debug().Str("user_id", userID).Int("count", len(owned)).Msg("saved recommendations")
	}()
}

// Wait blocks until in-flight writes finish or ctx is done.
func (r *Recorder) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
