package usecase

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
)

type GetCitiesUseCase struct {
	storage port.FilterRepositoryPort
}

func NewGetCitiesUseCase(storage port.FilterRepositoryPort) *GetCitiesUseCase {
	return &GetCitiesUseCase{storage: storage}
}

func (uc *GetCitiesUseCase) Execute(ctx context.Context, filters domain.CityFilters) ([]domain.ValueCount, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetCities",
		"filters":  filters,
	})

	ucLogger.Debug("Use case started", nil)

	cities, err := uc.storage.GetCities(ctx, filters, domain.DynamicCitiesLimit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"cities": len(cities)})
	return cities, nil
}
