package usecase

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
)

type SearchCarsUseCase struct {
	storage port.ListingRepositoryPort
}

func NewSearchCarsUseCase(storage port.ListingRepositoryPort) *SearchCarsUseCase {
	return &SearchCarsUseCase{storage: storage}
}

// Execute aggregates the whole filtered set first, then fetches the requested page.
func (uc *SearchCarsUseCase) Execute(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SearchCars",
		"filters":   filters,
		"page":      page.Page,
		"page_size": page.PageSize,
	})

	ucLogger.Debug("Use case started", nil)

	aggregates, err := uc.storage.SearchAggregates(ctx, filters)
	if err != nil {
		ucLogger.Error("Failed to aggregate filtered listings", err, nil)
		return nil, err
	}

	result := &domain.SearchResult{
		Listings:   []domain.Listing{},
		TotalCount: aggregates.TotalCount,
		Pagination: domain.NewPagination(aggregates.TotalCount, page),
		Stats:      aggregates.Rounded(),
	}

	// nothing matched, the page query would return nothing either
	if aggregates.TotalCount == 0 {
		ucLogger.Info("No listings matched filters", nil)
		return result, nil
	}

	listings, err := uc.storage.SearchPage(ctx, filters, page)
	if err != nil {
		ucLogger.Error("Failed to fetch page", err, nil)
		return nil, err
	}
	result.Listings = listings

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(listings),
	})
	return result, nil
}
