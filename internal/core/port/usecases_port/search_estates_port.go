package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type SearchEstatesUseCase interface {
	Execute(ctx context.Context, filters domain.EstateSearchFilters, page domain.Pagination) (*domain.EstateSearchResult, error)
}
