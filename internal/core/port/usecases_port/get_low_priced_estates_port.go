package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetLowPricedEstatesUseCase interface {
	Execute(ctx context.Context) ([]domain.Estate, error)
}
