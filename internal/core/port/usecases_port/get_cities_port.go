package usecases_port

import (
	"car-catalog-service/internal/core/domain"
	"context"
)

type GetCitiesUseCase interface {
	Execute(ctx context.Context, filters domain.CityFilters) ([]domain.ValueCount, error)
}
