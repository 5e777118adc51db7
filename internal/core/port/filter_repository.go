package port

import (
	"car-catalog-service/internal/core/domain"
	"context"
)

type FilterRepositoryPort interface {
	GetBrands(ctx context.Context) ([]domain.ValueCount, error)
	GetModels(ctx context.Context) ([]domain.ModelOption, error)
	GetSeriesGroups(ctx context.Context) ([]domain.SeriesOption, error)
	GetYears(ctx context.Context) ([]domain.ValueCount, error)
	GetFuels(ctx context.Context) ([]domain.ValueCount, error)
	GetTransmissions(ctx context.Context) ([]domain.ValueCount, error)
	GetSellers(ctx context.Context) ([]domain.ValueCount, error)
	GetTopCities(ctx context.Context, limit int) ([]domain.ValueCount, error)

	// GetCities lists derived cities of listings matching filters, most frequent first.
	GetCities(ctx context.Context, filters domain.CityFilters, limit int) ([]domain.ValueCount, error)
}
