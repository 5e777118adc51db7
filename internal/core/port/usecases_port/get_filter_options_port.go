package usecases_port

import (
	"car-catalog-service/internal/core/domain"
	"context"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}
