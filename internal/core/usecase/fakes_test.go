package usecase

import (
	"car-catalog-service/internal/core/domain"
	"context"
	"sync"
)

type fakeListingRepo struct {
	listings   []domain.Listing
	stats      *domain.PriceAggregates
	aggregates *domain.PriceAggregates
	page       []domain.Listing
	err        error

	pageCalls  int
	gotLimit   int
	gotStats   domain.StatsFilters
	gotFilters domain.SearchFilters
	gotPage    domain.PageRequest
}

func (f *fakeListingRepo) ListRecent(ctx context.Context, limit int) ([]domain.Listing, error) {
	f.gotLimit = limit
	return f.listings, f.err
}

func (f *fakeListingRepo) GetPriceStats(ctx context.Context, filters domain.StatsFilters) (*domain.PriceAggregates, error) {
	f.gotStats = filters
	return f.stats, f.err
}

func (f *fakeListingRepo) SearchAggregates(ctx context.Context, filters domain.SearchFilters) (*domain.PriceAggregates, error) {
	f.gotFilters = filters
	return f.aggregates, f.err
}

func (f *fakeListingRepo) SearchPage(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) ([]domain.Listing, error) {
	f.pageCalls++
	f.gotPage = page
	return f.page, nil
}

type fakeFilterRepo struct {
	mu        sync.Mutex
	calls     int
	failOn    string
	err       error
	cityLimit int
	cities    []domain.ValueCount
}

func (f *fakeFilterRepo) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if name == f.failOn {
		return f.err
	}
	return nil
}

func (f *fakeFilterRepo) GetBrands(ctx context.Context) ([]domain.ValueCount, error) {
	return []domain.ValueCount{{Value: "Audi", Count: 10}}, f.hit("brands")
}

func (f *fakeFilterRepo) GetModels(ctx context.Context) ([]domain.ModelOption, error) {
	series := "A3"
	return []domain.ModelOption{{Model: "A3 Sedan 1.5 TFSI", Brand: "Audi", Series: &series, Count: 4}}, f.hit("models")
}

func (f *fakeFilterRepo) GetSeriesGroups(ctx context.Context) ([]domain.SeriesOption, error) {
	return []domain.SeriesOption{{Series: "A3", Brand: "Audi", Count: 4}}, f.hit("series")
}

func (f *fakeFilterRepo) GetYears(ctx context.Context) ([]domain.ValueCount, error) {
	return []domain.ValueCount{{Value: "2020", Count: 3}}, f.hit("years")
}

func (f *fakeFilterRepo) GetFuels(ctx context.Context) ([]domain.ValueCount, error) {
	return []domain.ValueCount{{Value: "Benzin", Count: 7}}, f.hit("fuels")
}

func (f *fakeFilterRepo) GetTransmissions(ctx context.Context) ([]domain.ValueCount, error) {
	return []domain.ValueCount{{Value: "Otomatik", Count: 9}}, f.hit("transmissions")
}

func (f *fakeFilterRepo) GetSellers(ctx context.Context) ([]domain.ValueCount, error) {
	return []domain.ValueCount{{Value: "Galeriden", Count: 6}}, f.hit("sellers")
}

func (f *fakeFilterRepo) GetTopCities(ctx context.Context, limit int) ([]domain.ValueCount, error) {
	f.mu.Lock()
	f.cityLimit = limit
	f.mu.Unlock()
	return []domain.ValueCount{{Value: "İstanbul", Count: 5}}, f.hit("cities")
}

func (f *fakeFilterRepo) GetCities(ctx context.Context, filters domain.CityFilters, limit int) ([]domain.ValueCount, error) {
	f.cityLimit = limit
	return f.cities, f.err
}

type fakeCache struct {
	stored *domain.FilterOptions
	getErr error
	sets   int
}

func (c *fakeCache) Get(ctx context.Context) (*domain.FilterOptions, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.stored, c.stored != nil, nil
}

func (c *fakeCache) Set(ctx context.Context, options *domain.FilterOptions) error {
	c.sets++
	c.stored = options
	return nil
}
