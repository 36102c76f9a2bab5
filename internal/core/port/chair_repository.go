package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// ChairRepositoryPort is the chair-shard data access surface.
type ChairRepositoryPort interface {
	// Search runs the count and page queries for the given facet filters.
	Search(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error)
	// GetByID returns the row regardless of stock; callers decide visibility.
	GetByID(ctx context.Context, id int64) (*domain.Chair, error)
	// LowPriced returns the cheapest in-stock chairs.
	LowPriced(ctx context.Context, limit int) ([]domain.Chair, error)
	// BulkInsert writes all rows in a single statement inside a transaction.
	BulkInsert(ctx context.Context, chairs []domain.Chair) error
	// Purchase decrements stock by one when stock > 0; it returns
	// domain.ErrNotFound if the chair does not exist and succeeds as a no-op
	// when stock is already exhausted.
	Purchase(ctx context.Context, id int64) error
	// LoadSchema replays every *.sql file of dir against the shard.
	LoadSchema(ctx context.Context, dir string) error
}
