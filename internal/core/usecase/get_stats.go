package usecase

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
)

type GetStatsUseCase struct {
	storage port.ListingRepositoryPort
}

func NewGetStatsUseCase(storage port.ListingRepositoryPort) *GetStatsUseCase {
	return &GetStatsUseCase{storage: storage}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context, filters domain.StatsFilters) (*domain.PriceStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetStats",
		"filters":  filters,
	})

	ucLogger.Debug("Use case started", nil)

	aggregates, err := uc.storage.GetPriceStats(ctx, filters)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	stats := aggregates.Rounded()
	ucLogger.Info("Use case finished successfully", port.Fields{"total_count": stats.TotalCount})
	return &stats, nil
}
