package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetLowPricedChairsUseCase interface {
	Execute(ctx context.Context) ([]domain.Chair, error)
}
