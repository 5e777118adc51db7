package usecase

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type GetFilterOptionsUseCase struct {
	storage port.FilterRepositoryPort
	// cache is optional
	cache port.FilterOptionsCachePort
}

func NewGetFilterOptionsUseCase(storage port.FilterRepositoryPort, cache port.FilterOptionsCachePort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{storage: storage, cache: cache}
}

// Execute collects the eight option lists. The queries are independent and run
// concurrently; any failure fails the whole call.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})

	ucLogger.Debug("Use case started", nil)

	if uc.cache != nil {
		cached, found, err := uc.cache.Get(ctx)
		if err != nil {
			// a broken cache must not take the endpoint down
			ucLogger.Warn("Filter options cache read failed", port.Fields{"error": err.Error()})
		} else if found {
			ucLogger.Debug("Filter options served from cache", nil)
			return cached, nil
		}
	}

	options := &domain.FilterOptions{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		options.Brands, err = uc.storage.GetBrands(gctx)
		return wrapOption("brands", err)
	})
	g.Go(func() (err error) {
		options.Models, err = uc.storage.GetModels(gctx)
		return wrapOption("models", err)
	})
	g.Go(func() (err error) {
		options.Series, err = uc.storage.GetSeriesGroups(gctx)
		return wrapOption("series", err)
	})
	g.Go(func() (err error) {
		options.Years, err = uc.storage.GetYears(gctx)
		return wrapOption("years", err)
	})
	g.Go(func() (err error) {
		options.Fuels, err = uc.storage.GetFuels(gctx)
		return wrapOption("fuels", err)
	})
	g.Go(func() (err error) {
		options.Transmissions, err = uc.storage.GetTransmissions(gctx)
		return wrapOption("transmissions", err)
	})
	g.Go(func() (err error) {
		options.Sellers, err = uc.storage.GetSellers(gctx)
		return wrapOption("sellers", err)
	})
	g.Go(func() (err error) {
		options.Cities, err = uc.storage.GetTopCities(gctx, domain.FilterCitiesLimit)
		return wrapOption("cities", err)
	})

	if err := g.Wait(); err != nil {
		ucLogger.Error("Failed to collect filter options", err, nil)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, options); err != nil {
			ucLogger.Warn("Filter options cache write failed", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"brands": len(options.Brands),
		"models": len(options.Models),
		"cities": len(options.Cities),
	})
	return options, nil
}

func wrapOption(name string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s options: %w", name, err)
	}
	return nil
}
