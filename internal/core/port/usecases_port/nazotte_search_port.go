package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type NazotteSearchUseCase interface {
	Execute(ctx context.Context, coordinates []domain.Coordinate) (*domain.EstateSearchResult, error)
}
