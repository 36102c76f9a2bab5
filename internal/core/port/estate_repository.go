package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// EstateRepositoryPort is the estate-shard data access surface.
type EstateRepositoryPort interface {
	Search(ctx context.Context, filters domain.EstateSearchFilters, page domain.Pagination) (*domain.EstateSearchResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Estate, error)
	LowPriced(ctx context.Context, limit int) ([]domain.Estate, error)
	BulkInsert(ctx context.Context, estates []domain.Estate) error
	// SearchInPolygon returns estates whose stored point lies inside the
	// polygon described by coords, capped at limit rows.
	SearchInPolygon(ctx context.Context, coords []domain.Coordinate, limit int) ([]domain.Estate, error)
	// RecommendForChair returns estates whose door admits the chair in any
	// orientation.
	RecommendForChair(ctx context.Context, chair *domain.Chair, limit int) ([]domain.Estate, error)
	LoadSchema(ctx context.Context, dir string) error
}
