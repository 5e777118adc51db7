package usecases_port

import (
	"car-catalog-service/internal/core/domain"
	"context"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context, filters domain.StatsFilters) (*domain.PriceStats, error)
}
