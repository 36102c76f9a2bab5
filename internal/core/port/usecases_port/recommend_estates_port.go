package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type RecommendEstatesUseCase interface {
	Execute(ctx context.Context, chairID int64) ([]domain.Estate, error)
}
