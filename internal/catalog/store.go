// Package catalog loads the course catalog and pairs it with the text index
// built from the same courses.
package catalog

import (
	"context"
	"errors"
	"os"

	"github.com/jonathan/course-recommender/internal/logging"
	"github.com/jonathan/course-recommender/internal/metrics"
	"github.com/jonathan/course-recommender/internal/types"
)

// DefaultCSVPath is the conventional location of the flat-file catalog.
const DefaultCSVPath = "data/courses.csv"

// Sources that can supply a catalog.
const (
	SourceDatabase = "database"
	SourceCSV      = "csv"
	SourceBuiltin  = "builtin"
)

// CourseSource is a structured store of courses, typically the database.
type CourseSource interface {
	ListCourses(ctx context.Context) ([]types.Course, error)
}

// Store resolves the catalog from the configured sources in order.
type Store struct {
	source  CourseSource
	csvPath string
}

// NewStore creates a Store. source may be nil; an empty csvPath uses DefaultCSVPath.
func NewStore(source CourseSource, csvPath string) *Store {
	if csvPath == "" {
		csvPath = DefaultCSVPath
	}
	return &Store{source: source, csvPath: csvPath}
}

// Load returns a non-empty catalog and the name of the source that supplied
// it. Failures are logged and fall through to the next source; the built-in
// dataset is the last resort.
func (s *Store) Load(ctx context.Context) ([]types.Course, string) {
	log := logging.With("catalog")

	if courses, err := s.loadDatabase(ctx); err == nil {
		log.Info().Int("count", len(courses)).Str("source", SourceDatabase).Msg("catalog loaded")
		metrics.CatalogLoads.WithLabelValues(SourceDatabase).Inc()
		return courses, SourceDatabase
	} else if s.source != nil {
		log.Warn().Err(err).Msg("falling back from database")
	}

	courses, err := s.loadCSV()
	if err == nil {
		log.Info().Int("count", len(courses)).Str("source", SourceCSV).Str("path", s.csvPath).Msg("catalog loaded")
		metrics.CatalogLoads.WithLabelValues(SourceCSV).Inc()
		return courses, SourceCSV
	}
	log.Error().Err(err).Msg("falling back to built-in catalog")

	metrics.CatalogLoads.WithLabelValues(SourceBuiltin).Inc()
	return FallbackCourses(), SourceBuiltin
}

func (s *Store) loadDatabase(ctx context.Context) ([]types.Course, error) {
	if s.source == nil {
		return nil, &SourceError{Step: SourceDatabase, Err: errors.New("not configured")}
	}
	courses, err := s.source.ListCourses(ctx)
	if err != nil {
		return nil, &SourceError{Step: SourceDatabase, Err: err}
	}
	if len(courses) == 0 {
		return nil, &SourceError{Step: SourceDatabase, Err: ErrNoRows}
	}
	return courses, nil
}

// loadCSV reads the flat file, writing the sample catalog first if it is absent.
func (s *Store) loadCSV() ([]types.Course, error) {
	if _, err := os.Stat(s.csvPath); errors.Is(err, os.ErrNotExist) {
		log := logging.With("catalog")
		log.Info().Str("path", s.csvPath).Msg("csv catalog not found, writing sample data")
		if err := WriteSampleFile(s.csvPath); err != nil {
			return nil, &SourceError{Step: SourceCSV, Err: err}
		}
	}

	courses, err := LoadCSVFile(s.csvPath)
	if err != nil {
		return nil, &SourceError{Step: SourceCSV, Err: err}
	}
	if len(courses) == 0 {
		return nil, &SourceError{Step: SourceCSV, Err: ErrNoRows}
	}
	return courses, nil
}
