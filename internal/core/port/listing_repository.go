package port

import (
	"car-catalog-service/internal/core/domain"
	"context"
)

type ListingRepositoryPort interface {
	// ListRecent returns up to limit priced listings, newest scrape first.
	ListRecent(ctx context.Context, limit int) ([]domain.Listing, error)
	// GetPriceStats aggregates the priced listings matching filters, median included.
	GetPriceStats(ctx context.Context, filters domain.StatsFilters) (*domain.PriceAggregates, error)
	// SearchAggregates aggregates the whole filtered set, ignoring pagination.
	SearchAggregates(ctx context.Context, filters domain.SearchFilters) (*domain.PriceAggregates, error)
	// SearchPage returns one sorted page of the filtered set.
	SearchPage(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) ([]domain.Listing, error)
}
