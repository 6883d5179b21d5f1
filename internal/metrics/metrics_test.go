package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/api/health", "GET", "200"))
	ObserveRequest("/api/health", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/api/health", "GET", "200"))
	assert.Equal(t, before+1, after)
}

func TestSetSnapshot(t *testing.T) {
	SetSnapshot(12, true)
	assert.Equal(t, 12.0, testutil.ToFloat64(CatalogCourses))
	assert.Equal(t, 1.0, testutil.ToFloat64(IndexReady))

	SetSnapshot(3, false)
	assert.Equal(t, 3.0, testutil.ToFloat64(CatalogCourses))
	assert.Equal(t, 0.0, testutil.ToFloat64(IndexReady))
}
