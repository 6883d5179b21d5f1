package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jonathan/course-recommender/internal/logging"
	"github.com/jonathan/course-recommender/internal/metrics"
	"github.com/jonathan/course-recommender/internal/textindex"
	"github.com/jonathan/course-recommender/internal/types"
	"golang.org/x/sync/singleflight"
)

// Snapshot is an immutable catalog together with the index built from it.
// Index row i always describes Courses[i]. Index is nil when the build
// failed; callers treat that as textindex.ErrModelNotReady.
type Snapshot struct {
	Courses  []types.Course
	Index    *textindex.Index
	Source   string
	LoadedAt time.Time
}

// NewSnapshot builds the text index from courses and returns both together.
// The courses slice is copied so later changes by the caller cannot
// desynchronize catalog and index.
func NewSnapshot(courses []types.Course, source string, opts textindex.Options) *Snapshot {
	owned := make([]types.Course, len(courses))
	copy(owned, courses)

	descriptions := make([]string, len(owned))
	for i := range owned {
		descriptions[i] = owned[i].Description
	}

	idx, err := textindex.Build(descriptions, opts)
	if err != nil {
		log := logging.With("catalog")
		log.Error().Err(err).Int("courses", len(owned)).Msg("text index build failed")
		idx = nil
	}

	return &Snapshot{
		Courses:  owned,
		Index:    idx,
		Source:   source,
		LoadedAt: time.Now().UTC(),
	}
}

// Ready reports whether the text index is available.
func (s *Snapshot) Ready() bool {
	return s != nil && s.Index != nil
}

// Len returns the number of courses.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Courses)
}

// Holder publishes the current snapshot. Readers never block; reloads build
// a complete new snapshot and swap it in atomically.
type Holder struct {
	store   *Store
	opts    textindex.Options
	current atomic.Pointer[Snapshot]
	group   singleflight.Group
}

// NewHolder creates a Holder without loading anything.
func NewHolder(store *Store, opts textindex.Options) *Holder {
	return &Holder{store: store, opts: opts}
}

// Current returns the active snapshot, or nil before the first load.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Set publishes snap as the active snapshot.
func (h *Holder) Set(snap *Snapshot) {
	h.current.Store(snap)
	metrics.SetSnapshot(snap.Len(), snap.Ready())
}

// Reload loads the catalog, builds a new snapshot and publishes it.
// Concurrent calls share a single load.
func (h *Holder) Reload(ctx context.Context) *Snapshot {
	v, _, _ := h.group.Do("reload", func() (any, error) {
		courses, source := h.store.Load(ctx)
		snap := NewSnapshot(courses, source, h.opts)
		h.Set(snap)
		return snap, nil
	})
	return v.(*Snapshot)
}
