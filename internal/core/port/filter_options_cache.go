package port

import (
	"car-catalog-service/internal/core/domain"
	"context"
)

// FilterOptionsCachePort stores the last computed filter options.
// Get reports found=false on a miss.
type FilterOptionsCachePort interface {
	Get(ctx context.Context) (options *domain.FilterOptions, found bool, err error)
	Set(ctx context.Context, options *domain.FilterOptions) error
}
