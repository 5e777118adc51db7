package usecase

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
)

type ListCarsUseCase struct {
	storage port.ListingRepositoryPort
}

func NewListCarsUseCase(storage port.ListingRepositoryPort) *ListCarsUseCase {
	return &ListCarsUseCase{storage: storage}
}

func (uc *ListCarsUseCase) Execute(ctx context.Context, limit int) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListCars",
		"limit":    limit,
	})

	ucLogger.Debug("Use case started", nil)

	listings, err := uc.storage.ListRecent(ctx, limit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(listings)})
	return listings, nil
}
