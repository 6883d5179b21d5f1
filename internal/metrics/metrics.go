// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "course_recommender_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "course_recommender_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// RecommendationFallbacks counts degraded recommendation paths.
	RecommendationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "course_recommender_fallbacks_total",
			Help: "Recommendation requests that widened the filter or used neutral scores",
		},
		[]string{"kind"}, // "widened", "neutral_score"
	)

	// CatalogLoads counts catalog loads by the source that supplied the data.
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "course_recommender_catalog_loads_total",
			Help: "Catalog loads by source",
		},
		[]string{"source"}, // "database", "csv", "builtin"
	)

	// CatalogCourses is the number of courses in the active snapshot.
	CatalogCourses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "course_recommender_catalog_courses",
			Help: "Number of courses in the active catalog snapshot",
		},
	)

	// IndexReady is 1 when the text index of the active snapshot is built.
	IndexReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "course_recommender_index_ready",
			Help: "1 if the text index is built, 0 otherwise",
		},
	)

	// PersistenceErrors counts failed best-effort recommendation writes.
	PersistenceErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "course_recommender_persistence_errors_total",
			Help: "Failed attempts to persist recommendations",
		},
	)
)

// ObserveRequest records one handled HTTP request.
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// SetSnapshot updates the catalog gauges.
func SetSnapshot(courses int, indexReady bool) {
	CatalogCourses.Set(float64(courses))
	if indexReady {
		IndexReady.Set(1)
	} else {
		IndexReady.Set(0)
	}
}
