package usecases_port

import (
	"car-catalog-service/internal/core/domain"
	"context"
)

type ListCarsUseCase interface {
	Execute(ctx context.Context, limit int) ([]domain.Listing, error)
}
