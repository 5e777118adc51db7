package rest

import (
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields port.Fields)             {}
func (nopLogger) Warn(msg string, fields port.Fields)             {}
func (nopLogger) Error(msg string, err error, fields port.Fields) {}
func (nopLogger) Debug(msg string, fields port.Fields)            {}
func (l nopLogger) WithFields(fields port.Fields) port.LoggerPort { return l }

type fakeListCars struct {
	listings []domain.Listing
	err      error
	gotLimit int
}

func (f *fakeListCars) Execute(ctx context.Context, limit int) ([]domain.Listing, error) {
	f.gotLimit = limit
	return f.listings, f.err
}

type fakeGetStats struct {
	stats   *domain.PriceStats
	err     error
	filters domain.StatsFilters
}

func (f *fakeGetStats) Execute(ctx context.Context, filters domain.StatsFilters) (*domain.PriceStats, error) {
	f.filters = filters
	return f.stats, f.err
}

type fakeFilterOptions struct {
	options *domain.FilterOptions
	err     error
}

func (f *fakeFilterOptions) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	return f.options, f.err
}

type fakeSearchCars struct {
	result  *domain.SearchResult
	err     error
	calls   int
	filters domain.SearchFilters
	page    domain.PageRequest
}

func (f *fakeSearchCars) Execute(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResult, error) {
	f.calls++
	f.filters = filters
	f.page = page
	return f.result, f.err
}

type fakeGetCities struct {
	cities  []domain.ValueCount
	err     error
	calls   int
	filters domain.CityFilters
}

func (f *fakeGetCities) Execute(ctx context.Context, filters domain.CityFilters) ([]domain.ValueCount, error) {
	f.calls++
	f.filters = filters
	return f.cities, f.err
}

type fakeMetrics struct {
	routes []string
}

func (f *fakeMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	f.routes = append(f.routes, route)
}

func (f *fakeMetrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("metrics"))
	})
}

type testEnv struct {
	list    *fakeListCars
	stats   *fakeGetStats
	filters *fakeFilterOptions
	search  *fakeSearchCars
	cities  *fakeGetCities
	metrics *fakeMetrics
	router  http.Handler
}

const staticPageBody = "<html>car analyzer</html>"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pagePath := filepath.Join(t.TempDir(), "car-analyzer-table.html")
	require.NoError(t, os.WriteFile(pagePath, []byte(staticPageBody), 0o644))

	env := &testEnv{
		list:    &fakeListCars{},
		stats:   &fakeGetStats{stats: &domain.PriceStats{}},
		filters: &fakeFilterOptions{options: &domain.FilterOptions{}},
		search:  &fakeSearchCars{result: &domain.SearchResult{Listings: []domain.Listing{}}},
		cities:  &fakeGetCities{},
		metrics: &fakeMetrics{},
	}
	handler := NewCarHandler(env.list, env.stats, env.filters, env.search, env.cities)
	env.router = NewRouter(ServerConfig{
		Port:           "0",
		StaticPagePath: pagePath,
		AllowedOrigins: []string{"*"},
	}, handler, env.metrics, nopLogger{})
	return env
}

func (e *testEnv) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func strPtr(s string) *string { return &s }
func i32Ptr(v int32) *int32   { return &v }
