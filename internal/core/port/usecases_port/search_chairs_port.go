package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type SearchChairsUseCase interface {
	Execute(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error)
}
