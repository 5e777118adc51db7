package usecases_port

import (
	"car-catalog-service/internal/core/domain"
	"context"
)

type SearchCarsUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResult, error)
}
