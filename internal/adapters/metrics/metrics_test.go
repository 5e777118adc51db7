package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_HandlerExposesObservations(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/cars/search", http.StatusOK, 25*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/cars/search", http.StatusBadRequest, time.Millisecond)
	m.CacheLookup("hit")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `car_catalog_http_requests_total{method="GET",route="/api/cars/search",status="200"} 1`)
	assert.Contains(t, text, `car_catalog_http_requests_total{method="GET",route="/api/cars/search",status="400"} 1`)
	assert.Contains(t, text, `car_catalog_http_request_duration_seconds_count{method="GET",route="/api/cars/search"} 2`)
	assert.Contains(t, text, `car_catalog_filter_options_cache_lookups_total{result="hit"} 1`)
}

func TestMetrics_InstancesDoNotShareRegistry(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
